package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/golangid/wedding-invitation/candihelper"
	"github.com/golangid/wedding-invitation/internal/modules/invitation/domain"
	"github.com/golangid/wedding-invitation/logger"
	shareddomain "github.com/golangid/wedding-invitation/pkg/shared/domain"
	"github.com/golangid/wedding-invitation/tracer"
)

type invitationRepoInMem struct {
	mu    sync.RWMutex
	data  map[string]shareddomain.Invitation
	order []string
	path  string
	now   func() time.Time
}

// NewInvitationRepoInMem in memory repo, loaded from and snapshotted to json file at path.
// Empty path disables the snapshot.
func NewInvitationRepoInMem(path string) (InvitationRepository, error) {
	r := &invitationRepoInMem{
		data: make(map[string]shareddomain.Invitation),
		path: path,
		now:  time.Now,
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *invitationRepoInMem) load() error {
	if r.path == "" {
		return nil
	}

	b, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read json database %s: %w", r.path, err)
	}
	if len(b) == 0 {
		return nil
	}

	var invitations []shareddomain.Invitation
	if err := json.Unmarshal(b, &invitations); err != nil {
		return fmt.Errorf("decode json database %s: %w", r.path, err)
	}
	for _, inv := range invitations {
		if _, ok := r.data[inv.ID]; ok || inv.ID == "" {
			logger.LogWf("json database: skip entry with empty or duplicate id %q", inv.ID)
			continue
		}
		r.data[inv.ID] = inv.Clone()
		r.order = append(r.order, inv.ID)
	}
	logger.LogIf("json database: loaded %d invitation(s) from %s", len(r.order), r.path)
	return nil
}

// snapshot must be called with write lock held
func (r *invitationRepoInMem) snapshot() error {
	if r.path == "" {
		return nil
	}

	invitations := make([]shareddomain.Invitation, 0, len(r.order))
	for _, id := range r.order {
		invitations = append(invitations, r.data[id])
	}
	b, err := json.MarshalIndent(invitations, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}

// stamp current time, never earlier than prev
func (r *invitationRepoInMem) stamp(prev string) string {
	now := candihelper.FormatTimestamp(r.now())
	if now < prev {
		return prev
	}
	return now
}

func (r *invitationRepoInMem) FetchAll(ctx context.Context) ([]shareddomain.Invitation, error) {
	trace, _ := tracer.StartTraceWithContext(ctx, "InvitationRepoInMem:FetchAll")
	defer trace.Finish()

	r.mu.RLock()
	defer r.mu.RUnlock()

	data := make([]shareddomain.Invitation, 0, len(r.order))
	for _, id := range r.order {
		data = append(data, r.data[id].Clone())
	}
	return data, nil
}

func (r *invitationRepoInMem) Find(ctx context.Context, id string) (*shareddomain.Invitation, error) {
	trace, _ := tracer.StartTraceWithContext(ctx, "InvitationRepoInMem:Find")
	defer trace.Finish()

	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.data[id]
	if !ok {
		return nil, domain.ErrInvitationNotFound
	}
	res := inv.Clone()
	return &res, nil
}

func (r *invitationRepoInMem) Save(ctx context.Context, data shareddomain.InvitationData) (res *shareddomain.Invitation, err error) {
	trace, _ := tracer.StartTraceWithContext(ctx, "InvitationRepoInMem:Save")
	defer func() { trace.SetError(err); trace.Finish() }()

	r.mu.Lock()
	defer r.mu.Unlock()

	inv := shareddomain.Invitation{ID: uuid.NewString(), WeddingInvitationData: data.Clone()}
	now := r.stamp("")
	inv.WeddingInvitationData.Metadata.CreatedDate = now
	inv.WeddingInvitationData.Metadata.LastModified = now

	r.data[inv.ID] = inv
	r.order = append(r.order, inv.ID)
	if err = r.snapshot(); err != nil {
		delete(r.data, inv.ID)
		r.order = r.order[:len(r.order)-1]
		return nil, fmt.Errorf("snapshot json database: %w", err)
	}

	trace.SetTag("id", inv.ID)
	res = new(shareddomain.Invitation)
	*res = inv.Clone()
	return res, nil
}

func (r *invitationRepoInMem) Replace(ctx context.Context, id string, data shareddomain.InvitationData) (*shareddomain.Invitation, error) {
	return r.update(ctx, "Replace", id, func(target *shareddomain.InvitationData) {
		metadata := target.Metadata
		*target = data.Clone()
		target.Metadata.CreatedDate = metadata.CreatedDate
		target.Metadata.LastModified = metadata.LastModified
	})
}

func (r *invitationRepoInMem) UpdateTemplate(ctx context.Context, id string, data shareddomain.Template) (*shareddomain.Invitation, error) {
	return r.update(ctx, "UpdateTemplate", id, func(target *shareddomain.InvitationData) {
		target.Template = data.Clone()
	})
}

func (r *invitationRepoInMem) UpdateFonts(ctx context.Context, id string, data shareddomain.Fonts) (*shareddomain.Invitation, error) {
	return r.update(ctx, "UpdateFonts", id, func(target *shareddomain.InvitationData) {
		target.Fonts = data.Clone()
	})
}

func (r *invitationRepoInMem) UpdateContent(ctx context.Context, id string, data shareddomain.Content) (*shareddomain.Invitation, error) {
	return r.update(ctx, "UpdateContent", id, func(target *shareddomain.InvitationData) {
		target.Content = data
	})
}

func (r *invitationRepoInMem) UpdateBasicInfo(ctx context.Context, id string, data shareddomain.BasicInfo) (*shareddomain.Invitation, error) {
	return r.update(ctx, "UpdateBasicInfo", id, func(target *shareddomain.InvitationData) {
		target.Content.BasicInfo = data
	})
}

func (r *invitationRepoInMem) UpdateCeremonyDetails(ctx context.Context, id string, data shareddomain.CeremonyDetails) (*shareddomain.Invitation, error) {
	return r.update(ctx, "UpdateCeremonyDetails", id, func(target *shareddomain.InvitationData) {
		target.Content.CeremonyDetails = data
	})
}

func (r *invitationRepoInMem) UpdateAdditionalInfo(ctx context.Context, id string, data shareddomain.AdditionalInfo) (*shareddomain.Invitation, error) {
	return r.update(ctx, "UpdateAdditionalInfo", id, func(target *shareddomain.InvitationData) {
		target.Content.AdditionalInfo = data
	})
}

func (r *invitationRepoInMem) Delete(ctx context.Context, id string) (deleted bool, err error) {
	trace, _ := tracer.StartTraceWithContext(ctx, "InvitationRepoInMem:Delete")
	defer func() { trace.SetError(err); trace.Finish() }()

	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.data[id]
	if !ok {
		return false, nil
	}

	prevOrder := r.order
	delete(r.data, id)
	r.order = make([]string, 0, len(prevOrder))
	for _, existing := range prevOrder {
		if existing != id {
			r.order = append(r.order, existing)
		}
	}
	if err = r.snapshot(); err != nil {
		r.data[id] = inv
		r.order = prevOrder
		return false, fmt.Errorf("snapshot json database: %w", err)
	}
	return true, nil
}

// update apply mutation to a copy of stored data, committed only after the snapshot succeed
func (r *invitationRepoInMem) update(ctx context.Context, op, id string, apply func(*shareddomain.InvitationData)) (res *shareddomain.Invitation, err error) {
	trace, _ := tracer.StartTraceWithContext(ctx, "InvitationRepoInMem:"+op)
	defer func() { trace.SetError(err); trace.Finish() }()
	trace.SetTag("id", id)

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.data[id]
	if !ok {
		return nil, domain.ErrInvitationNotFound
	}

	next := prev.Clone()
	apply(&next.WeddingInvitationData)
	next.WeddingInvitationData.Metadata.LastModified = r.stamp(prev.WeddingInvitationData.Metadata.LastModified)

	r.data[id] = next
	if err = r.snapshot(); err != nil {
		r.data[id] = prev
		return nil, fmt.Errorf("snapshot json database: %w", err)
	}

	res = new(shareddomain.Invitation)
	*res = next.Clone()
	return res, nil
}
