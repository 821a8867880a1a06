package infra

import (
	"github.com/pulumi/pulumi-gcp/sdk/v6/go/gcp/compute"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/lkhq/gkestack/internal/config"
	"github.com/lkhq/gkestack/internal/util/naming"
)

// Fixed firewall source ranges. Health check probes originate from
// Google's published ranges; IAP TCP forwarding uses its own block.
var (
	healthCheckSourceRanges = []string{"35.191.0.0/16", "130.211.0.0/22"}
	iapSourceRange          = "35.235.240.0/20"
)

// declareNetwork declares the VPC, the regional cluster subnetwork with its
// two secondary ranges, the firewall rules, and (for private platforms) the
// Cloud Router and NAT gateway.
func declareNetwork(ctx *pulumi.Context, cfg *config.Config, res *Resources) error {
	networkName := naming.Network(cfg.Name)
	network, err := compute.NewNetwork(ctx, networkName, &compute.NetworkArgs{
		Project:               pulumi.String(cfg.Project),
		Name:                  pulumi.String(networkName),
		Description:           pulumi.String("Platform VPC network"),
		AutoCreateSubnetworks: pulumi.Bool(false),
	}, pulumi.DependsOn(res.Services))
	if err != nil {
		return err
	}
	res.Network = network

	subnetName := naming.Subnetwork(cfg.Name, cfg.Region)
	subnetwork, err := compute.NewSubnetwork(ctx, subnetName, &compute.SubnetworkArgs{
		Project:               pulumi.String(cfg.Project),
		Name:                  pulumi.String(subnetName),
		Region:                pulumi.String(cfg.Region),
		Network:               network.ID(),
		IpCidrRange:           pulumi.String(cfg.Network.CIDR),
		PrivateIpGoogleAccess: pulumi.Bool(true),
		SecondaryIpRanges: compute.SubnetworkSecondaryIpRangeArray{
			&compute.SubnetworkSecondaryIpRangeArgs{
				RangeName:   pulumi.String(naming.PodsRange(cfg.Name)),
				IpCidrRange: pulumi.String(cfg.Network.PodsCIDR),
			},
			&compute.SubnetworkSecondaryIpRangeArgs{
				RangeName:   pulumi.String(naming.ServicesRange(cfg.Name)),
				IpCidrRange: pulumi.String(cfg.Network.ServicesCIDR),
			},
		},
	})
	if err != nil {
		return err
	}
	res.Subnetwork = subnetwork

	if err := declareFirewalls(ctx, cfg, res); err != nil {
		return err
	}

	if cfg.Network.PrivateNodes {
		return declareNAT(ctx, cfg, res)
	}
	return nil
}

// declareFirewalls declares the fixed rule set: load balancer health
// checks, internal east-west traffic, and IAP SSH to tagged nodes.
func declareFirewalls(ctx *pulumi.Context, cfg *config.Config, res *Resources) error {
	ruleName := naming.Firewall(cfg.Name, "allow-health-checks")
	_, err := compute.NewFirewall(ctx, ruleName, &compute.FirewallArgs{
		Project:     pulumi.String(cfg.Project),
		Name:        pulumi.String(ruleName),
		Description: pulumi.String("Allow ingress TCP health checks from Google load balancer ranges"),
		Network:     res.Network.Name,
		Allows: compute.FirewallAllowArray{
			&compute.FirewallAllowArgs{
				Protocol: pulumi.String("tcp"),
				Ports: pulumi.StringArray{
					pulumi.String("80"),
					pulumi.String("443"),
					pulumi.String("8080"),
					pulumi.String("10256"),
				},
			},
		},
		SourceRanges: pulumi.ToStringArray(healthCheckSourceRanges),
		TargetTags: pulumi.StringArray{
			pulumi.String(naming.NodeTag(cfg.Name)),
		},
	})
	if err != nil {
		return err
	}

	ruleName = naming.Firewall(cfg.Name, "allow-internal")
	_, err = compute.NewFirewall(ctx, ruleName, &compute.FirewallArgs{
		Project:     pulumi.String(cfg.Project),
		Name:        pulumi.String(ruleName),
		Description: pulumi.String("Allow all traffic between platform ranges"),
		Network:     res.Network.Name,
		Allows: compute.FirewallAllowArray{
			&compute.FirewallAllowArgs{Protocol: pulumi.String("tcp")},
			&compute.FirewallAllowArgs{Protocol: pulumi.String("udp")},
			&compute.FirewallAllowArgs{Protocol: pulumi.String("icmp")},
		},
		SourceRanges: pulumi.StringArray{
			pulumi.String(cfg.Network.CIDR),
			pulumi.String(cfg.Network.PodsCIDR),
			pulumi.String(cfg.Network.ServicesCIDR),
		},
	})
	if err != nil {
		return err
	}

	ruleName = naming.Firewall(cfg.Name, "allow-iap-ssh")
	_, err = compute.NewFirewall(ctx, ruleName, &compute.FirewallArgs{
		Project:     pulumi.String(cfg.Project),
		Name:        pulumi.String(ruleName),
		Description: pulumi.String("Allow SSH to nodes through IAP TCP forwarding"),
		Network:     res.Network.Name,
		Allows: compute.FirewallAllowArray{
			&compute.FirewallAllowArgs{
				Protocol: pulumi.String("tcp"),
				Ports:    pulumi.StringArray{pulumi.String("22")},
			},
		},
		SourceRanges: pulumi.StringArray{
			pulumi.String(iapSourceRange),
		},
		TargetTags: pulumi.StringArray{
			pulumi.String(naming.NodeTag(cfg.Name)),
		},
	})
	return err
}

// declareNAT declares the Cloud Router and NAT gateway that give private
// nodes egress to the internet (image pulls, OS updates).
func declareNAT(ctx *pulumi.Context, cfg *config.Config, res *Resources) error {
	routerName := naming.Router(cfg.Name)
	router, err := compute.NewRouter(ctx, routerName, &compute.RouterArgs{
		Project: pulumi.String(cfg.Project),
		Name:    pulumi.String(routerName),
		Region:  pulumi.String(cfg.Region),
		Network: res.Network.ID(),
	})
	if err != nil {
		return err
	}

	natName := naming.NAT(cfg.Name)
	_, err = compute.NewRouterNat(ctx, natName, &compute.RouterNatArgs{
		Project:                       pulumi.String(cfg.Project),
		Name:                          pulumi.String(natName),
		Region:                        pulumi.String(cfg.Region),
		Router:                        router.Name,
		NatIpAllocateOption:           pulumi.String("AUTO_ONLY"),
		SourceSubnetworkIpRangesToNat: pulumi.String("ALL_SUBNETWORKS_ALL_IP_RANGES"),
	})
	return err
}
