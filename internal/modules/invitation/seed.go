package invitation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/golangid/wedding-invitation/codebase/interfaces"
	"github.com/golangid/wedding-invitation/internal/modules/invitation/domain"
	"github.com/golangid/wedding-invitation/internal/modules/invitation/usecase"
	"github.com/golangid/wedding-invitation/logger"
	shareddomain "github.com/golangid/wedding-invitation/pkg/shared/domain"
)

// Seed insert every invitation data of json array source, stop at first invalid entry
func Seed(ctx context.Context, uc usecase.InvitationUsecase, v interfaces.FieldValidator, source []byte) (ids []string, err error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(source, &entries); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	for i, entry := range entries {
		data := shareddomain.NewInvitationData()
		if err := json.Unmarshal(entry, &data); err != nil {
			return ids, fmt.Errorf("seed entry %d: %w", i, err)
		}
		if err := domain.ValidateInvitationData(v, data); err != nil {
			return ids, fmt.Errorf("seed entry %d: %w", i, err)
		}

		created, err := uc.CreateInvitation(ctx, data)
		if err != nil {
			return ids, fmt.Errorf("seed entry %d: %w", i, err)
		}
		logger.LogIf("seed: created wedding invitation %s", created.ID)
		ids = append(ids, created.ID)
	}
	return ids, nil
}
