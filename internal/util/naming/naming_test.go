package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "acme-vpc", Network("acme"))
	assert.Equal(t, "acme-subnet-europe-west3", Subnetwork("acme", "europe-west3"))
	assert.Equal(t, "acme-pods", PodsRange("acme"))
	assert.Equal(t, "acme-services", ServicesRange("acme"))
	assert.Equal(t, "acme-fw-allow-internal", Firewall("acme", "allow-internal"))
	assert.Equal(t, "acme-router", Router("acme"))
	assert.Equal(t, "acme-nat", NAT("acme"))
	assert.Equal(t, "acme-gke", Cluster("acme"))
	assert.Equal(t, "acme-spot", NodePool("acme", "spot"))
	assert.Equal(t, "acme-node", NodeTag("acme"))
}

func TestServiceAccountNames(t *testing.T) {
	t.Parallel()

	id := ServiceAccountID("acme", "deployer")
	assert.Equal(t, "acme-deployer", id)
	assert.LessOrEqual(t, len(id), 30, "account IDs are capped at 30 characters")

	assert.Equal(t,
		"acme-deployer@acme-prod-123.iam.gserviceaccount.com",
		ServiceAccountEmail(id, "acme-prod-123"))
}

func TestWorkloadIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "acme-prod-123.svc.id.goog", WorkloadIdentityPool("acme-prod-123"))
	assert.Equal(t,
		"serviceAccount:acme-prod-123.svc.id.goog[apps/default]",
		WorkloadIdentityMember("acme-prod-123", "apps", "default"))
}

func TestRegistryURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"europe-west3-docker.pkg.dev/acme-prod-123/acme-images",
		RegistryURL("europe-west3", "acme-prod-123", "acme-images"))
}
