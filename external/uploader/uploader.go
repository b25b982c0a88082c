package uploader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/foxseedlab/emovoice/internal/blobstore"
	"github.com/foxseedlab/emovoice/internal/repository"
	"github.com/foxseedlab/emovoice/internal/uploader"
)

// RemoteUploader composes the optional blob store and the optional metadata
// repository. Either may be nil; with both nil every call short-circuits
// with ErrNotConfigured.
type RemoteUploader struct {
	store  blobstore.Store
	repo   repository.Repository
	bucket string
	now    func() time.Time
}

func NewRemoteUploader(store blobstore.Store, repo repository.Repository, bucket string) *RemoteUploader {
	return &RemoteUploader{
		store:  store,
		repo:   repo,
		bucket: bucket,
		now:    time.Now,
	}
}

func (u *RemoteUploader) UploadSentenceLog(ctx context.Context, input uploader.SentenceLogInput, clip []byte, clipContentType string) (uploader.Result, error) {
	if u.store == nil && u.repo == nil {
		return uploader.Result{}, uploader.ErrNotConfigured
	}

	var result uploader.Result
	if len(clip) > 0 && u.store != nil {
		path := u.clipPath(input, clipContentType)
		url, err := u.store.Upload(ctx, u.bucket, path, clip, clipContentType)
		if err != nil {
			return uploader.Result{}, fmt.Errorf("%w: %w", uploader.ErrUploadFailed, err)
		}
		result.RemoteAudioURL = url
	}

	if u.repo != nil {
		audioURL := result.RemoteAudioURL
		if audioURL == "" {
			audioURL = input.LocalAudioURL
		}
		rowID, err := u.repo.InsertSentenceLog(ctx, repository.InsertSentenceLogInput{
			SessionID:       input.SessionID,
			ParticipantName: input.ParticipantName,
			EmotionID:       input.EmotionID,
			EmotionLabel:    input.EmotionLabel,
			SentenceID:      input.SentenceID,
			SentenceText:    input.SentenceText,
			ShownAt:         input.ShownAt,
			PressedAt:       input.PressedAt,
			DurationMs:      input.DurationMs,
			AudioURL:        audioURL,
		})
		if err != nil {
			return result, fmt.Errorf("%w: %w", uploader.ErrPersistFailed, err)
		}
		result.RemoteRowID = rowID
	}
	return result, nil
}

func (u *RemoteUploader) SessionMirrorCount(ctx context.Context, sessionID string) (int, error) {
	if u.repo == nil {
		return 0, uploader.ErrNotConfigured
	}
	rows, err := u.repo.ListSentenceLogsBySessionID(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", uploader.ErrPersistFailed, err)
	}
	return len(rows), nil
}

// clipPath keys the blob by participant (or session when the name slugs to
// nothing) and disambiguates repeats with epoch millis.
func (u *RemoteUploader) clipPath(input uploader.SentenceLogInput, contentType string) string {
	folder := participantSlug(input.ParticipantName)
	if folder == "" {
		folder = input.SessionID
	}
	return fmt.Sprintf("%s/%s-%d-%d%s",
		folder, input.EmotionID, input.SentenceID, u.now().UnixMilli(), clipExtension(contentType))
}

func clipExtension(contentType string) string {
	switch contentType {
	case "audio/wav", "audio/x-wav":
		return ".wav"
	case "audio/webm":
		return ".webm"
	case "audio/ogg":
		return ".ogg"
	default:
		return ".bin"
	}
}

func participantSlug(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
