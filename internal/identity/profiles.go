package identity

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/conquiguias/conquiguias-api/internal/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const profileCollection = "usuarios"

// FirestoreProfiles stores user profile documents in Firestore.
type FirestoreProfiles struct {
	client *firestore.Client
}

func NewFirestoreProfiles(ctx context.Context, projectID string) (*FirestoreProfiles, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID must be provided to create a firestore client")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return &FirestoreProfiles{client: client}, nil
}

func (p *FirestoreProfiles) Set(ctx context.Context, uid string, profile models.UserProfile) error {
	if _, err := p.client.Collection(profileCollection).Doc(uid).Set(ctx, profile); err != nil {
		return fmt.Errorf("failed to write profile for %s: %w", uid, err)
	}
	return nil
}

// Get returns nil without error when no profile document exists; a missing
// profile is a valid state for accounts created outside the register flow.
func (p *FirestoreProfiles) Get(ctx context.Context, uid string) (*models.UserProfile, error) {
	snap, err := p.client.Collection(profileCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile for %s: %w", uid, err)
	}

	var profile models.UserProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile for %s: %w", uid, err)
	}
	return &profile, nil
}

func (p *FirestoreProfiles) Close() error {
	return p.client.Close()
}
