package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection   = "users"
	profileCollection = "perfil"
)

// Firestore keeps users and profiles as documents in Cloud Firestore.
type Firestore struct {
	client *firestore.Client
}

// OpenFirestore connects using Application Default Credentials unless a
// credentials file is given. FIRESTORE_EMULATOR_HOST is honoured by the SDK.
func OpenFirestore(ctx context.Context, projectID, credentialsFile string) (*Firestore, error) {
	conf := &firebase.Config{ProjectID: projectID}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return &Firestore{client: client}, nil
}

func (f *Firestore) Close() error { return f.client.Close() }

func (f *Firestore) CreateUser(ctx context.Context, u User) (User, error) {
	u.Email = normalizeEmail(u.Email)

	_, err := f.first(ctx, f.client.Collection(usersCollection).Where("email", "==", u.Email))
	if err == nil {
		return User{}, ErrEmailTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("lookup email: %w", err)
	}

	u.ID = newUserID()
	u.CreatedAt = time.Now().UTC()
	if _, err := f.client.Collection(usersCollection).Doc(u.ID).Create(ctx, u); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (f *Firestore) Authenticate(ctx context.Context, email, password string) (User, error) {
	q := f.client.Collection(usersCollection).
		Where("email", "==", normalizeEmail(email)).
		Where("password", "==", password)
	doc, err := f.first(ctx, q)
	if errors.Is(err, ErrNotFound) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("lookup user: %w", err)
	}

	var u User
	if err := doc.DataTo(&u); err != nil {
		return User{}, fmt.Errorf("failed to parse user: %w", err)
	}
	if u.ID == "" {
		u.ID = doc.Ref.ID
	}
	return u, nil
}

func (f *Firestore) SaveProfile(ctx context.Context, p Profile) error {
	_, err := f.client.Collection(profileCollection).Doc(p.UserID).Set(ctx, map[string]interface{}{
		"userId":    p.UserID,
		"name":      p.Name,
		"age":       string(p.Age),
		"weight":    string(p.Weight),
		"height":    string(p.Height),
		"updatedAt": time.Now().UTC(),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (f *Firestore) GetProfile(ctx context.Context, userID string) (Profile, error) {
	doc, err := f.client.Collection(profileCollection).Doc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}

	var p Profile
	if err := doc.DataTo(&p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}
	return p, nil
}

func (f *Firestore) first(ctx context.Context, q firestore.Query) (*firestore.DocumentSnapshot, error) {
	iter := q.Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}
