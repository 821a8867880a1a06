package infra

import (
	"fmt"

	"github.com/pulumi/pulumi-kubernetes/sdk/v4/go/kubernetes"
	corev1 "github.com/pulumi/pulumi-kubernetes/sdk/v4/go/kubernetes/core/v1"
	metav1 "github.com/pulumi/pulumi-kubernetes/sdk/v4/go/kubernetes/meta/v1"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/lkhq/gkestack/internal/config"
)

// declareNamespaces creates the configured namespaces in the freshly
// provisioned cluster through a Kubernetes provider built from the
// generated kubeconfig. No-op when no namespaces are configured.
func declareNamespaces(ctx *pulumi.Context, cfg *config.Config, res *Resources) error {
	if len(cfg.Cluster.Namespaces) == 0 {
		return nil
	}

	// The provider must wait for the node pools: namespace creation needs
	// a schedulable cluster, not just a control plane.
	dependencies := make([]pulumi.Resource, 0, len(res.NodePools))
	for _, pool := range res.NodePools {
		dependencies = append(dependencies, pool)
	}

	providerName := fmt.Sprintf("%s-k8s", cfg.Name)
	provider, err := kubernetes.NewProvider(ctx, providerName, &kubernetes.ProviderArgs{
		Kubeconfig: res.Kubeconfig,
	}, pulumi.DependsOn(dependencies))
	if err != nil {
		return err
	}

	for _, namespace := range cfg.Cluster.Namespaces {
		resourceName := fmt.Sprintf("%s-ns-%s", cfg.Name, namespace)
		_, err := corev1.NewNamespace(ctx, resourceName, &corev1.NamespaceArgs{
			Metadata: &metav1.ObjectMetaArgs{
				Name: pulumi.String(namespace),
				Labels: pulumi.StringMap{
					"platform": pulumi.String(cfg.Name),
				},
			},
		}, pulumi.Provider(provider))
		if err != nil {
			return err
		}
	}

	return nil
}
