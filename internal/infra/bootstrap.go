package infra

import (
	"github.com/pulumi/pulumi-gcp/sdk/v6/go/gcp/storage"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/lkhq/gkestack/internal/config"
)

// BootstrapProgram returns the micro-program that creates the remote state
// bucket. It runs against the local file backend, since the bucket cannot
// hold its own state.
func BootstrapProgram(cfg *config.Config) pulumi.RunFunc {
	return func(ctx *pulumi.Context) error {
		bucket, err := storage.NewBucket(ctx, cfg.State.Bucket, &storage.BucketArgs{
			Project:                  pulumi.String(cfg.Project),
			Name:                     pulumi.String(cfg.State.Bucket),
			Location:                 pulumi.String(cfg.State.Location),
			UniformBucketLevelAccess: pulumi.Bool(true),
			Versioning: &storage.BucketVersioningArgs{
				Enabled: pulumi.Bool(true),
			},
			// Old state revisions are kept for rollback but trimmed after
			// a year to bound storage cost.
			LifecycleRules: storage.BucketLifecycleRuleArray{
				&storage.BucketLifecycleRuleArgs{
					Action: &storage.BucketLifecycleRuleActionArgs{
						Type: pulumi.String("Delete"),
					},
					Condition: &storage.BucketLifecycleRuleConditionArgs{
						NumNewerVersions: pulumi.Int(10),
						WithState:        pulumi.String("ARCHIVED"),
					},
				},
			},
		})
		if err != nil {
			return err
		}

		ctx.Export("stateBucket", bucket.Name)
		ctx.Export("stateBucketURL", bucket.Url)
		return nil
	}
}
