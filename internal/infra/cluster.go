package infra

import (
	"github.com/pulumi/pulumi-gcp/sdk/v6/go/gcp/container"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/lkhq/gkestack/internal/config"
	"github.com/lkhq/gkestack/internal/util/naming"
)

// declareCluster declares the GKE cluster and its node pools. The cluster
// is VPC-native (alias IPs from the subnetwork's secondary ranges) with
// Workload Identity enabled; the default node pool is removed in favour of
// the explicitly configured pools.
func declareCluster(ctx *pulumi.Context, cfg *config.Config, res *Resources) error {
	clusterName := naming.Cluster(cfg.Name)

	args := &container.ClusterArgs{
		Project:               pulumi.String(cfg.Project),
		Name:                  pulumi.String(clusterName),
		Location:              pulumi.String(cfg.Region),
		Network:               res.Network.ID(),
		Subnetwork:            res.Subnetwork.ID(),
		RemoveDefaultNodePool: pulumi.Bool(true),
		InitialNodeCount:      pulumi.Int(1),
		IpAllocationPolicy: &container.ClusterIpAllocationPolicyArgs{
			ClusterSecondaryRangeName:  pulumi.String(naming.PodsRange(cfg.Name)),
			ServicesSecondaryRangeName: pulumi.String(naming.ServicesRange(cfg.Name)),
		},
		WorkloadIdentityConfig: &container.ClusterWorkloadIdentityConfigArgs{
			WorkloadPool: pulumi.String(naming.WorkloadIdentityPool(cfg.Project)),
		},
		ReleaseChannel: &container.ClusterReleaseChannelArgs{
			Channel: pulumi.String(cfg.Cluster.ReleaseChannel),
		},
		MaintenancePolicy: &container.ClusterMaintenancePolicyArgs{
			DailyMaintenanceWindow: &container.ClusterMaintenancePolicyDailyMaintenanceWindowArgs{
				StartTime: pulumi.String(cfg.Cluster.MaintenanceStart),
			},
		},
		MasterAuthorizedNetworksConfig: masterAuthorizedNetworks(cfg),
		LoggingConfig: &container.ClusterLoggingConfigArgs{
			EnableComponents: pulumi.StringArray{
				pulumi.String("SYSTEM_COMPONENTS"),
				pulumi.String("WORKLOADS"),
			},
		},
		MonitoringConfig: &container.ClusterMonitoringConfigArgs{
			EnableComponents: pulumi.StringArray{
				pulumi.String("SYSTEM_COMPONENTS"),
			},
		},
	}

	if cfg.Network.PrivateNodes {
		args.PrivateClusterConfig = &container.ClusterPrivateClusterConfigArgs{
			EnablePrivateNodes:    pulumi.Bool(true),
			EnablePrivateEndpoint: pulumi.Bool(false),
			MasterIpv4CidrBlock:   pulumi.String(cfg.Network.MasterCIDR),
		}
	}

	// Deletion protection is enforced by the engine: a protected cluster
	// fails any destroy until the flag is lowered and re-applied.
	cluster, err := container.NewCluster(ctx, clusterName, args,
		pulumi.Protect(cfg.Cluster.DeletionProtection))
	if err != nil {
		return err
	}
	res.Cluster = cluster

	for _, pool := range cfg.NodePools {
		nodePool, err := declareNodePool(ctx, cfg, res, pool)
		if err != nil {
			return err
		}
		res.NodePools = append(res.NodePools, nodePool)
	}

	res.Kubeconfig = generateKubeconfig(cluster.Endpoint, cluster.Name, cluster.MasterAuth)
	return nil
}

// declareNodePool declares a single worker pool attached to the cluster.
func declareNodePool(ctx *pulumi.Context, cfg *config.Config, res *Resources, pool config.NodePoolConfig) (*container.NodePool, error) {
	poolName := naming.NodePool(cfg.Name, pool.Name)

	labels := pulumi.StringMap{
		"platform": pulumi.String(cfg.Name),
		"pool":     pulumi.String(pool.Name),
	}
	for k, v := range pool.Labels {
		labels[k] = pulumi.String(v)
	}

	return container.NewNodePool(ctx, poolName, &container.NodePoolArgs{
		Project:  pulumi.String(cfg.Project),
		Name:     pulumi.String(poolName),
		Cluster:  res.Cluster.ID(),
		Location: pulumi.String(cfg.Region),
		Autoscaling: &container.NodePoolAutoscalingArgs{
			MinNodeCount: pulumi.Int(pool.MinNodes),
			MaxNodeCount: pulumi.Int(pool.MaxNodes),
		},
		Management: &container.NodePoolManagementArgs{
			AutoRepair:  pulumi.Bool(true),
			AutoUpgrade: pulumi.Bool(true),
		},
		NodeConfig: &container.NodePoolNodeConfigArgs{
			MachineType:    pulumi.String(pool.MachineType),
			DiskSizeGb:     pulumi.Int(pool.DiskSizeGB),
			Spot:           pulumi.Bool(pool.Spot),
			ServiceAccount: res.Accounts[AccountNodes].Email,
			OauthScopes: pulumi.StringArray{
				pulumi.String("https://www.googleapis.com/auth/cloud-platform"),
			},
			Labels: labels,
			Tags: pulumi.StringArray{
				pulumi.String(naming.NodeTag(cfg.Name)),
			},
			WorkloadMetadataConfig: &container.NodePoolNodeConfigWorkloadMetadataConfigArgs{
				Mode: pulumi.String("GKE_METADATA"),
			},
		},
	})
}

// masterAuthorizedNetworks maps the configured CIDR allowlist onto the
// cluster control plane. An empty list keeps the endpoint publicly
// reachable.
func masterAuthorizedNetworks(cfg *config.Config) container.ClusterMasterAuthorizedNetworksConfigPtrInput {
	blocks := container.ClusterMasterAuthorizedNetworksConfigCidrBlockArray{}
	if len(cfg.Network.AuthorizedNetworks) == 0 {
		blocks = append(blocks, &container.ClusterMasterAuthorizedNetworksConfigCidrBlockArgs{
			CidrBlock:   pulumi.String("0.0.0.0/0"),
			DisplayName: pulumi.String("public"),
		})
	}
	for _, an := range cfg.Network.AuthorizedNetworks {
		blocks = append(blocks, &container.ClusterMasterAuthorizedNetworksConfigCidrBlockArgs{
			CidrBlock:   pulumi.String(an.CIDR),
			DisplayName: pulumi.String(an.Name),
		})
	}
	return &container.ClusterMasterAuthorizedNetworksConfigArgs{
		CidrBlocks: blocks,
	}
}
