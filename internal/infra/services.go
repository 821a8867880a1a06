package infra

import (
	"fmt"

	"github.com/pulumi/pulumi-gcp/sdk/v6/go/gcp/projects"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/lkhq/gkestack/internal/config"
)

// requiredServices are the project APIs that must be enabled before any
// platform resource can be created.
var requiredServices = []string{
	"compute.googleapis.com",
	"container.googleapis.com",
	"artifactregistry.googleapis.com",
	"iam.googleapis.com",
}

// declareServices enables the required Google APIs on the project. Every
// later resource depends on these so that a fresh project provisions
// cleanly in a single apply.
func declareServices(ctx *pulumi.Context, cfg *config.Config, res *Resources) error {
	for _, service := range requiredServices {
		resourceName := fmt.Sprintf("%s-service-%s", cfg.Name, service)
		svc, err := projects.NewService(ctx, resourceName, &projects.ServiceArgs{
			Project:                  pulumi.String(cfg.Project),
			Service:                  pulumi.String(service),
			DisableDependentServices: pulumi.Bool(true),
			DisableOnDestroy:         pulumi.Bool(false),
		})
		if err != nil {
			return err
		}
		res.Services = append(res.Services, svc)
	}
	return nil
}
