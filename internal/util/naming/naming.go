package naming

import "fmt"

// Naming functions for platform resources.
// All Google Cloud resources follow consistent naming patterns so that
// everything belonging to a platform can be identified at a glance.

func Network(platform string) string {
	return fmt.Sprintf("%s-vpc", platform)
}

func Subnetwork(platform, region string) string {
	return fmt.Sprintf("%s-subnet-%s", platform, region)
}

func PodsRange(platform string) string {
	return fmt.Sprintf("%s-pods", platform)
}

func ServicesRange(platform string) string {
	return fmt.Sprintf("%s-services", platform)
}

func Firewall(platform, rule string) string {
	return fmt.Sprintf("%s-fw-%s", platform, rule)
}

func Router(platform string) string {
	return fmt.Sprintf("%s-router", platform)
}

func NAT(platform string) string {
	return fmt.Sprintf("%s-nat", platform)
}

func Cluster(platform string) string {
	return fmt.Sprintf("%s-gke", platform)
}

func NodePool(platform, pool string) string {
	return fmt.Sprintf("%s-%s", platform, pool)
}

// ServiceAccountID returns the account_id part of a service account email.
// Account IDs are capped at 30 characters by the provider, which the
// platform name length limit keeps us under.
func ServiceAccountID(platform, role string) string {
	return fmt.Sprintf("%s-%s", platform, role)
}

// ServiceAccountEmail returns the globally unique email derived from an
// account ID and project.
func ServiceAccountEmail(accountID, project string) string {
	return fmt.Sprintf("%s@%s.iam.gserviceaccount.com", accountID, project)
}

// WorkloadIdentityPool returns the project's Workload Identity pool name.
func WorkloadIdentityPool(project string) string {
	return fmt.Sprintf("%s.svc.id.goog", project)
}

// WorkloadIdentityMember returns the IAM member string binding a Kubernetes
// service account to a Google service account.
func WorkloadIdentityMember(project, namespace, ksa string) string {
	return fmt.Sprintf("serviceAccount:%s.svc.id.goog[%s/%s]", project, namespace, ksa)
}

// RegistryURL returns the docker registry URL for an Artifact Registry
// repository.
func RegistryURL(region, project, repository string) string {
	return fmt.Sprintf("%s-docker.pkg.dev/%s/%s", region, project, repository)
}

func NodeTag(platform string) string {
	return fmt.Sprintf("%s-node", platform)
}
