package infra

import (
	"fmt"

	"github.com/pulumi/pulumi-gcp/sdk/v6/go/gcp/artifactregistry"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/lkhq/gkestack/internal/config"
)

// registryGrants maps registry roles to the platform accounts holding them.
// Nodes and workloads pull, the deployer pushes.
var registryGrants = []struct {
	role     string
	accounts []string
}{
	{"roles/artifactregistry.reader", []string{AccountNodes, AccountWorkload}},
	{"roles/artifactregistry.writer", []string{AccountDeployer}},
}

// declareRegistry declares the Artifact Registry docker repository and its
// per-account IAM grants.
func declareRegistry(ctx *pulumi.Context, cfg *config.Config, res *Resources) error {
	args := &artifactregistry.RepositoryArgs{
		Project:      pulumi.String(cfg.Project),
		Location:     pulumi.String(cfg.Region),
		RepositoryId: pulumi.String(cfg.Registry.ID),
		Description:  pulumi.String("Platform container images"),
		Format:       pulumi.String(cfg.Registry.Format),
	}
	if cfg.Registry.ImmutableTags {
		args.DockerConfig = &artifactregistry.RepositoryDockerConfigArgs{
			ImmutableTags: pulumi.Bool(true),
		}
	}

	repository, err := artifactregistry.NewRepository(ctx, cfg.Registry.ID, args,
		pulumi.DependsOn(res.Services))
	if err != nil {
		return err
	}
	res.Repository = repository

	for _, grant := range registryGrants {
		for _, accountRole := range grant.accounts {
			account := res.Accounts[accountRole]
			resourceName := fmt.Sprintf("%s-registry-%s", cfg.Registry.ID, accountRole)
			_, err := artifactregistry.NewRepositoryIamMember(ctx, resourceName, &artifactregistry.RepositoryIamMemberArgs{
				Project:    pulumi.String(cfg.Project),
				Location:   pulumi.String(cfg.Region),
				Repository: repository.Name,
				Role:       pulumi.String(grant.role),
				Member:     pulumi.Sprintf("serviceAccount:%s", account.Email),
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}
