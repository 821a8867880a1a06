package infra

import (
	"fmt"

	"github.com/pulumi/pulumi-gcp/sdk/v6/go/gcp/projects"
	"github.com/pulumi/pulumi-gcp/sdk/v6/go/gcp/serviceaccount"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/lkhq/gkestack/internal/config"
	"github.com/lkhq/gkestack/internal/util/naming"
)

// Account roles. The four platform identities and what they may do are
// fixed; only the emails vary with the platform name.
const (
	AccountNodes    = "nodes"
	AccountWorkload = "workload"
	AccountDeployer = "deployer"
	AccountViewer   = "viewer"
)

// accountSpec describes one platform service account and its project-level
// role grants.
type accountSpec struct {
	role        string
	displayName string
	description string
	roles       []string
}

// accountSpecs enumerates the four platform service accounts.
var accountSpecs = []accountSpec{
	{
		role:        AccountNodes,
		displayName: "Cluster node service account",
		description: "Identity of GKE node VMs; log and metric writing plus image pulls",
		roles: []string{
			"roles/logging.logWriter",
			"roles/monitoring.metricWriter",
			"roles/monitoring.viewer",
			"roles/stackdriver.resourceMetadata.writer",
			"roles/artifactregistry.reader",
		},
	},
	{
		role:        AccountWorkload,
		displayName: "Workload service account",
		description: "Identity assumed by in-cluster workloads via Workload Identity",
		roles: []string{
			"roles/artifactregistry.reader",
		},
	},
	{
		role:        AccountDeployer,
		displayName: "Deployer service account",
		description: "CI identity; pushes images and deploys to the cluster",
		roles: []string{
			"roles/container.developer",
			"roles/artifactregistry.writer",
		},
	},
	{
		role:        AccountViewer,
		displayName: "Viewer service account",
		description: "Read-only access for dashboards and audits",
		roles: []string{
			"roles/container.clusterViewer",
			"roles/monitoring.viewer",
		},
	},
}

// declareServiceAccounts declares the four platform service accounts, their
// project role grants, and the Workload Identity binding for the workload
// account.
func declareServiceAccounts(ctx *pulumi.Context, cfg *config.Config, res *Resources) error {
	for _, spec := range accountSpecs {
		accountID := naming.ServiceAccountID(cfg.Name, spec.role)
		account, err := serviceaccount.NewAccount(ctx, accountID, &serviceaccount.AccountArgs{
			Project:     pulumi.String(cfg.Project),
			AccountId:   pulumi.String(accountID),
			DisplayName: pulumi.String(spec.displayName),
			Description: pulumi.String(spec.description),
		}, pulumi.DependsOn(res.Services))
		if err != nil {
			return err
		}
		res.Accounts[spec.role] = account

		for i, role := range spec.roles {
			resourceName := fmt.Sprintf("%s-iam-%d", accountID, i)
			_, err := projects.NewIAMMember(ctx, resourceName, &projects.IAMMemberArgs{
				Project: pulumi.String(cfg.Project),
				Role:    pulumi.String(role),
				Member:  pulumi.Sprintf("serviceAccount:%s", account.Email),
			})
			if err != nil {
				return err
			}
		}
	}

	// Workload Identity: let the Kubernetes service account in the workload
	// namespace impersonate the workload Google service account.
	workload := res.Accounts[AccountWorkload]
	bindingName := fmt.Sprintf("%s-workload-identity", cfg.Name)
	_, err := serviceaccount.NewIAMMember(ctx, bindingName, &serviceaccount.IAMMemberArgs{
		ServiceAccountId: workload.Name,
		Role:             pulumi.String("roles/iam.workloadIdentityUser"),
		Member:           pulumi.String(naming.WorkloadIdentityMember(cfg.Project, cfg.WorkloadNamespace(), AccountWorkload)),
	})
	return err
}
