package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"peels-backend/models"
	"peels-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// profileChangesResponse is the identity provider's sync payload.
type profileChangesResponse struct {
	Users []models.RemoteProfile `json:"users"`
}

// ProfileSyncWorker keeps the local users table mirrored against the
// identity provider. Identity fields are overwritten on every sync;
// progression fields are owned locally and never touched here.
type ProfileSyncWorker struct {
	db           *gorm.DB
	interval     time.Duration
	baseURL      string
	endpointPath string
	serviceToken string
	httpClient   *http.Client
}

func NewProfileSyncWorker(db *gorm.DB, baseURL, endpointPath, serviceToken string) *ProfileSyncWorker {
	return &ProfileSyncWorker{
		db:           db,
		interval:     1 * time.Minute,
		baseURL:      baseURL,
		endpointPath: endpointPath,
		serviceToken: serviceToken,
		httpClient:   utils.HTTPClient,
	}
}

func (w *ProfileSyncWorker) Start(ctx context.Context) {
	log.Println("🔁 Starting profile sync worker (identity provider → users)…")

	// Initial backfill from the beginning of time.
	if err := w.syncBatch(ctx, time.Time{}); err != nil {
		log.Printf("⚠️ Initial profile sync failed: %v", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.syncBatch(ctx, w.lastSyncTime()); err != nil {
				log.Printf("❌ Profile sync batch failed: %v", err)
			}
		case <-ctx.Done():
			log.Println("⏹️ Profile sync worker stopped")
			return
		}
	}
}

// lastSyncTime is the most recent UpdatedAt we have locally; incremental
// syncs only ask for profiles changed after it.
func (w *ProfileSyncWorker) lastSyncTime() time.Time {
	var lastTime time.Time
	w.db.Model(&models.User{}).Select("COALESCE(MAX(updated_at), '0001-01-01')").Scan(&lastTime)
	return lastTime
}

func (w *ProfileSyncWorker) syncBatch(ctx context.Context, since time.Time) error {
	endpoint := fmt.Sprintf("%s%s?since=%s", w.baseURL, w.endpointPath, url.QueryEscape(since.UTC().Format(time.RFC3339)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+w.serviceToken)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("profile sync request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("profile sync returned %d: %s", resp.StatusCode, body)
	}

	var payload profileChangesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode profile sync payload: %w", err)
	}

	for _, profile := range payload.Users {
		if err := w.upsertProfile(profile); err != nil {
			log.Printf("⚠️ Failed to upsert profile %s: %v", profile.ExternalID, err)
		}
	}
	if len(payload.Users) > 0 {
		log.Printf("✅ Profile sync: %d profiles applied", len(payload.Users))
	}
	return nil
}

func (w *ProfileSyncWorker) upsertProfile(profile models.RemoteProfile) error {
	var user models.User
	err := w.db.Where("external_user_id = ?", profile.ExternalID).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		// First sight: seed a fresh progression record alongside identity.
		user = models.User{
			ID:               uuid.NewString(),
			ExternalUserID:   profile.ExternalID,
			Username:         profile.Username,
			Email:            profile.Email,
			AvatarURL:        profile.AvatarURL,
			Level:            1,
			RegistrationDate: profile.CreatedAt,
			EarnedBadges:     "[]",
		}
		return w.db.Create(&user).Error
	}
	if err != nil {
		return err
	}

	return w.db.Model(&user).Updates(map[string]interface{}{
		"username":   profile.Username,
		"email":      profile.Email,
		"avatar_url": profile.AvatarURL,
	}).Error
}
