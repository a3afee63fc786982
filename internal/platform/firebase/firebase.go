// Package firebase owns the lifecycle of the external collaborators: the
// identity provider, the document store and the storage bucket. Clients are
// constructed once at process start and injected into repositories; nothing
// here is a package-level singleton.
package firebase

import (
	"context"
	"os"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"github.com/nextgencodex-com/Vengase-backend/config"
)

type Clients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
	// Bucket is nil when no storage bucket is configured; the filesystem
	// image path works without it.
	Bucket *storage.BucketHandle
}

func NewClients(ctx context.Context, cfg *config.FirebaseConfig) (*Clients, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		if _, err := os.Stat(cfg.CredentialsFile); err == nil {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
		}
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initializing firebase app")
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initializing auth client")
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initializing firestore client")
	}

	clients := &Clients{Auth: authClient, Firestore: fsClient}

	if cfg.StorageBucket != "" {
		storageClient, err := app.Storage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "initializing storage client")
		}
		bucket, err := storageClient.DefaultBucket()
		if err != nil {
			return nil, errors.Wrap(err, "resolving storage bucket")
		}
		clients.Bucket = bucket
	}

	return clients, nil
}

func (c *Clients) Close() error {
	return c.Firestore.Close()
}
