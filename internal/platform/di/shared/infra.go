// internal/platform/di/shared/infra.go
package shared

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"cloud.google.com/go/storage"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"voltmart/internal/adapters/out/commerce"
	appcfg "voltmart/internal/infra/config"
	"voltmart/internal/infra/database"
	firestoreinfra "voltmart/internal/infra/firestore"
)

// secretRefPrefix marks a config value that lives in Secret Manager instead
// of the environment: "sm://<secretId>" resolves to the latest version of
// that secret in the service's project.
const secretRefPrefix = "sm://"

// Infra is shared runtime infrastructure for DI.
// - owns external clients (Firestore/FirebaseAuth/GCS/SecretManager/Postgres)
// - owns the commerce API client both services proxy to
// - owns env/config-resolved runtime settings
//
// Infra must NOT depend on storefront/console routers, handlers, or queries.
type Infra struct {
	Config    *appcfg.Config
	ProjectID string

	// Clients (owned; Close-managed)
	Firestore     *firestore.Client
	GCS           *storage.Client
	FirebaseApp   *firebase.App
	FirebaseAuth  *firebaseauth.Client
	SecretManager *secretmanager.Client
	DB            *database.DB

	Commerce *commerce.Client

	// Runtime settings (resolved once)
	ImageCacheBucket string
	CORSOrigin       string
}

// NewInfra initializes shared infra.
// Firestore and Postgres are strict (return error).
// Firebase/Auth, SecretManager and GCS are best-effort (warn + continue):
// without them the storefront still serves guests, just with auth and the
// persistent image cache disabled.
func NewInfra(ctx context.Context) (*Infra, error) {
	cfg := appcfg.Load()
	if cfg == nil {
		return nil, errors.New("shared.infra: config is nil")
	}

	projectID := strings.TrimSpace(cfg.GCPProjectID)
	if projectID == "" {
		return nil, errors.New("shared.infra: projectID is empty (set GCP_PROJECT_ID or GOOGLE_CLOUD_PROJECT)")
	}

	inf := &Infra{
		Config:           cfg,
		ProjectID:        projectID,
		ImageCacheBucket: strings.TrimSpace(cfg.ImageCacheBucket),
		CORSOrigin:       strings.TrimSpace(cfg.CORSOrigin),
	}

	// Credentials file (optional; mainly for local dev)
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds) // GOOGLE_APPLICATION_CREDENTIALS
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[shared.infra] Using credentials file for GCP clients: %s", redactPath(credFile))
	} else {
		log.Printf("[shared.infra] Using Application Default Credentials (no credentials file configured)")
	}

	// 1) Optional: Secret Manager client (resolves sm:// config values)
	{
		var sm *secretmanager.Client
		var err error
		if len(clientOpts) > 0 {
			sm, err = secretmanager.NewClient(ctx, clientOpts...)
		} else {
			sm, err = secretmanager.NewClient(ctx)
		}
		if err != nil {
			log.Printf("[shared.infra] WARN: secretmanager.NewClient failed: %v (sm:// config values cannot be resolved)", err)
			sm = nil
		}
		inf.SecretManager = sm
	}

	// 2) Resolve secret-referenced config values before opening clients
	{
		var err error
		if cfg.CommerceAPIKey, err = inf.resolveSecret(ctx, cfg.CommerceAPIKey); err != nil {
			return nil, fmt.Errorf("shared.infra: COMMERCE_API_KEY: %w", err)
		}
		if cfg.DBPassword, err = inf.resolveSecret(ctx, cfg.DBPassword); err != nil {
			return nil, fmt.Errorf("shared.infra: DB_PASSWORD: %w", err)
		}
	}

	// 3) Commerce API client (pure HTTP, no external handle to own)
	inf.Commerce = commerce.NewClientWithAPIKey(cfg.CommerceBaseURL, cfg.CommerceAPIKey)
	log.Printf("[shared.infra] commerce client initialized baseURL=%s", cfg.CommerceBaseURL)

	// 4) Firestore (strict)
	{
		fsWrap, err := firestoreinfra.NewClient(ctx, inf.ProjectID, credFile)
		if err != nil {
			return nil, fmt.Errorf("shared.infra: firestore init failed (project=%s): %w", inf.ProjectID, err)
		}
		inf.Firestore = fsWrap.Client
	}

	// 5) Postgres (strict; owns visitor sessions)
	{
		db, err := database.NewConnection(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		if err != nil {
			_ = inf.Firestore.Close()
			return nil, fmt.Errorf("shared.infra: postgres connection failed: %w", err)
		}
		inf.DB = db
	}

	// 6) GCS (best-effort; persistent image cache)
	if inf.ImageCacheBucket != "" {
		var gcsClient *storage.Client
		var err error
		if len(clientOpts) > 0 {
			gcsClient, err = storage.NewClient(ctx, clientOpts...)
		} else {
			gcsClient, err = storage.NewClient(ctx)
		}
		if err != nil {
			log.Printf("[shared.infra] WARN: storage.NewClient failed: %v (persistent image cache disabled)", err)
		} else {
			inf.GCS = gcsClient
			log.Printf("[shared.infra] GCS storage client initialized bucket=%s", inf.ImageCacheBucket)
		}
	} else {
		log.Printf("[shared.infra] IMAGE_CACHE_BUCKET is empty (persistent image cache disabled)")
	}

	// 7) Firebase App/Auth (best-effort; guests work without it)
	{
		var fbApp *firebase.App
		var err error

		fbCfg := &firebase.Config{ProjectID: inf.ProjectID}
		if len(clientOpts) > 0 {
			fbApp, err = firebase.NewApp(ctx, fbCfg, clientOpts...)
		} else {
			fbApp, err = firebase.NewApp(ctx, fbCfg)
		}

		if err != nil {
			log.Printf("[shared.infra] WARN: firebase app init failed: %v", err)
		} else {
			inf.FirebaseApp = fbApp
			authClient, err := fbApp.Auth(ctx)
			if err != nil {
				log.Printf("[shared.infra] WARN: firebase auth init failed: %v", err)
			} else {
				inf.FirebaseAuth = authClient
				log.Printf("[shared.infra] Firebase Auth initialized")
			}
		}
	}

	return inf, nil
}

// resolveSecret passes plain values through and fetches "sm://<secretId>"
// values from Secret Manager.
func (i *Infra) resolveSecret(ctx context.Context, value string) (string, error) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, secretRefPrefix) {
		return value, nil
	}

	secretID := strings.TrimPrefix(value, secretRefPrefix)
	if secretID == "" {
		return "", errors.New("empty secret id")
	}
	if i.SecretManager == nil {
		return "", errors.New("secret manager client not available")
	}

	name := "projects/" + i.ProjectID + "/secrets/" + secretID + "/versions/latest"
	resp, err := i.SecretManager.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("AccessSecretVersion failed (%s): %w", name, err)
	}
	if resp == nil || resp.Payload == nil {
		return "", fmt.Errorf("empty payload (%s)", name)
	}

	log.Printf("[shared.infra] resolved secret %s", secretID)
	return strings.TrimSpace(string(resp.Payload.Data)), nil
}

func (i *Infra) Close() error {
	if i == nil {
		return nil
	}
	if i.Firestore != nil {
		_ = i.Firestore.Close()
	}
	if i.GCS != nil {
		_ = i.GCS.Close()
	}
	if i.SecretManager != nil {
		_ = i.SecretManager.Close()
	}
	if i.DB != nil {
		_ = i.DB.Close()
	}
	return nil
}

func redactPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	base := p
	if idx := strings.LastIndexAny(p, `/\`); idx >= 0 && idx+1 < len(p) {
		base = p[idx+1:]
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" && strings.HasPrefix(p, home) {
		return "~/.../" + base
	}
	return ".../" + base
}
