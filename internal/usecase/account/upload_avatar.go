package account

import (
	"context"
	"io"

	"github.com/BruksfildServices01/barber-accounts/internal/audit"
	"github.com/BruksfildServices01/barber-accounts/internal/avatar"
	domain "github.com/BruksfildServices01/barber-accounts/internal/domain/account"
)

// ObjectStorage stores a public object and returns its URL.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type UploadAvatar struct {
	repo    domain.Repository
	storage ObjectStorage
	audit   *audit.Dispatcher
}

func NewUploadAvatar(repo domain.Repository, storage ObjectStorage, audit *audit.Dispatcher) *UploadAvatar {
	return &UploadAvatar{repo: repo, storage: storage, audit: audit}
}

func (uc *UploadAvatar) Execute(ctx context.Context, accountID string, image io.Reader) (string, error) {
	u, err := uc.repo.FindByID(ctx, accountID)
	if err != nil {
		return "", err
	}

	encoded, err := avatar.Process(image)
	if err != nil {
		return "", err
	}

	url, err := uc.storage.Put(ctx, avatar.Key(u.ID), avatar.ContentType, encoded)
	if err != nil {
		return "", err
	}

	u.AvatarURL = url
	if err := uc.repo.Update(ctx, u); err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.AccountEvent(u.ID, audit.ActionAvatarUpdated, nil))
	return url, nil
}
