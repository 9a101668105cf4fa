package kubernetes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"model-card-service/internal/config"
	"model-card-service/internal/core/domain"
	"model-card-service/internal/core/ports/output"
)

var configMapGVR = schema.GroupVersionResource{
	Version:  "v1",
	Resource: "configmaps",
}

type publisherClient struct {
	client    dynamic.Interface
	enabled   bool
	defaultNS string
}

// NewPublisherClient creates the cluster publisher adapter. Published cards
// land as ConfigMaps so serving workloads can mount the metadata.
func NewPublisherClient(cfg *config.KubernetesConfig) (ports.PublisherClient, error) {
	if !cfg.Enabled {
		return &publisherClient{enabled: false}, nil
	}

	var restCfg *rest.Config
	var err error

	if cfg.InCluster {
		restCfg, err = rest.InClusterConfig()
	} else if cfg.KubeConfigPath != "" {
		restCfg, err = clientcmd.BuildConfigFromFlags("", cfg.KubeConfigPath)
	} else {
		// Try default kubeconfig location
		home, _ := os.UserHomeDir()
		kubeconfig := filepath.Join(home, ".kube", "config")
		restCfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	}
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	client, err := dynamic.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	defaultNS := cfg.Namespace
	if defaultNS == "" {
		defaultNS = "model-serving"
	}

	return &publisherClient{
		client:    client,
		enabled:   true,
		defaultNS: defaultNS,
	}, nil
}

func (c *publisherClient) IsAvailable() bool {
	return c.enabled
}

func (c *publisherClient) Publish(ctx context.Context, namespace string, card *domain.ModelCard, rendered []byte) (string, error) {
	if namespace == "" {
		namespace = c.defaultNS
	}

	obj := c.buildConfigMap(namespace, card, rendered)

	created, err := c.client.Resource(configMapGVR).
		Namespace(namespace).
		Create(ctx, obj, metav1.CreateOptions{})
	if err == nil {
		return string(created.GetUID()), nil
	}
	if !apierrors.IsAlreadyExists(err) {
		return "", fmt.Errorf("create card configmap: %w", err)
	}

	// Already published once: refresh data in place.
	existing, err := c.client.Resource(configMapGVR).
		Namespace(namespace).
		Get(ctx, obj.GetName(), metav1.GetOptions{})
	if err != nil {
		return "", fmt.Errorf("get card configmap: %w", err)
	}

	existing.Object["data"] = obj.Object["data"]
	existing.SetLabels(obj.GetLabels())

	updated, err := c.client.Resource(configMapGVR).
		Namespace(namespace).
		Update(ctx, existing, metav1.UpdateOptions{})
	if err != nil {
		return "", fmt.Errorf("update card configmap: %w", err)
	}
	return string(updated.GetUID()), nil
}

func (c *publisherClient) Unpublish(ctx context.Context, namespace, slug string) error {
	if namespace == "" {
		namespace = c.defaultNS
	}

	err := c.client.Resource(configMapGVR).
		Namespace(namespace).
		Delete(ctx, configMapName(slug), metav1.DeleteOptions{})
	if err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("delete card configmap: %w", err)
	}
	return nil
}

func (c *publisherClient) buildConfigMap(namespace string, card *domain.ModelCard, rendered []byte) *unstructured.Unstructured {
	return &unstructured.Unstructured{
		Object: map[string]interface{}{
			"apiVersion": "v1",
			"kind":       "ConfigMap",
			"metadata": map[string]interface{}{
				"name":      configMapName(card.Slug),
				"namespace": namespace,
				"labels": map[string]interface{}{
					"app.kubernetes.io/managed-by": "model-card-service",
					"model-cards/base-model":       domain.Slugify(card.BaseModel),
					"model-cards/license":          card.License,
				},
			},
			"data": map[string]interface{}{
				"README.md": string(rendered),
			},
		},
	}
}

func configMapName(slug string) string {
	return "model-card-" + slug
}
