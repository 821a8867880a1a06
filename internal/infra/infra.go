// Package infra declares the platform resource graph as an inline engine
// program: project services, VPC networking, IAM service accounts, the GKE
// cluster with its node pools, and the Artifact Registry repository.
//
// The package contains no orchestration logic of its own. Ordering, diffing
// and lifecycle management belong to the engine; this code only declares
// resources and the dependency edges between them.
package infra

import (
	"github.com/pulumi/pulumi-gcp/sdk/v6/go/gcp/artifactregistry"
	"github.com/pulumi/pulumi-gcp/sdk/v6/go/gcp/compute"
	"github.com/pulumi/pulumi-gcp/sdk/v6/go/gcp/container"
	"github.com/pulumi/pulumi-gcp/sdk/v6/go/gcp/serviceaccount"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/lkhq/gkestack/internal/config"
	"github.com/lkhq/gkestack/internal/util/naming"
)

// Resources holds the shared results of the program's build steps. It is
// progressively populated as each step completes and read by later steps
// that need earlier results.
type Resources struct {
	// Service enablement (all other resources depend on these)
	Services []pulumi.Resource

	// Networking
	Network    *compute.Network
	Subnetwork *compute.Subnetwork

	// IAM (keyed by account role: nodes, workload, deployer, viewer)
	Accounts map[string]*serviceaccount.Account

	// Cluster
	Cluster   *container.Cluster
	NodePools []*container.NodePool

	// Registry
	Repository *artifactregistry.Repository

	// Kubeconfig rendered from the cluster endpoint and CA
	Kubeconfig pulumi.StringOutput
}

// Program returns the engine program declaring the full platform graph for
// the given configuration.
func Program(cfg *config.Config) pulumi.RunFunc {
	return func(ctx *pulumi.Context) error {
		res := &Resources{
			Accounts: make(map[string]*serviceaccount.Account),
		}

		if err := declareServices(ctx, cfg, res); err != nil {
			return err
		}
		if err := declareNetwork(ctx, cfg, res); err != nil {
			return err
		}
		if err := declareServiceAccounts(ctx, cfg, res); err != nil {
			return err
		}
		if err := declareCluster(ctx, cfg, res); err != nil {
			return err
		}
		if err := declareRegistry(ctx, cfg, res); err != nil {
			return err
		}
		if err := declareNamespaces(ctx, cfg, res); err != nil {
			return err
		}

		exportOutputs(ctx, cfg, res)
		return nil
	}
}

// exportOutputs publishes the stack outputs consumed by the CLI and by
// downstream deploy tooling.
func exportOutputs(ctx *pulumi.Context, cfg *config.Config, res *Resources) {
	ctx.Export("clusterName", res.Cluster.Name)
	ctx.Export("clusterEndpoint", res.Cluster.Endpoint)
	ctx.Export("clusterLocation", res.Cluster.Location)
	ctx.Export("networkName", res.Network.Name)
	ctx.Export("subnetworkName", res.Subnetwork.Name)
	ctx.Export("registryURL", pulumi.String(naming.RegistryURL(cfg.Region, cfg.Project, cfg.Registry.ID)))

	for role, account := range res.Accounts {
		ctx.Export(role+"ServiceAccountEmail", account.Email)
	}

	ctx.Export("kubeconfig", pulumi.ToSecret(res.Kubeconfig))
}
