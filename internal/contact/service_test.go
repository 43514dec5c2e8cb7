package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	created []*Submission
	err     error
}

func (f *fakeCreator) Create(ctx context.Context, sub *Submission) error {
	if f.err != nil {
		return f.err
	}
	sub.ID = int64(len(f.created) + 1)
	sub.Status = StatusNew
	f.created = append(f.created, sub)
	return nil
}

type fakeNotifier struct {
	notified []*Submission
}

func (f *fakeNotifier) SubmissionReceived(ctx context.Context, sub *Submission) {
	f.notified = append(f.notified, sub)
}

func TestSubmitValidationFailureCreatesNoRecord(t *testing.T) {
	store := &fakeCreator{}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)

	in := validInput()
	in.AgreeToPrivacyPolicy = false

	sub, fieldErrs, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, sub)
	assert.NotEmpty(t, fieldErrs)
	assert.Empty(t, store.created)
	assert.Empty(t, notifier.notified)
}

func TestSubmitPersistsAndNotifies(t *testing.T) {
	store := &fakeCreator{}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)

	sub, fieldErrs, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, sub)

	assert.Equal(t, StatusNew, sub.Status)
	require.Len(t, store.created, 1)
	require.Len(t, notifier.notified, 1)
	assert.Same(t, sub, notifier.notified[0])
}

func TestSubmitTrimsWhitespace(t *testing.T) {
	store := &fakeCreator{}
	svc := NewService(store, nil)

	in := validInput()
	in.Name = "  Jane Moyo  "
	in.Email = " jane@example.com "

	sub, fieldErrs, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, "Jane Moyo", sub.Name)
	assert.Equal(t, "jane@example.com", sub.Email)
}

func TestSubmitStorageFailure(t *testing.T) {
	store := &fakeCreator{err: errors.New("connection refused")}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)

	sub, fieldErrs, err := svc.Submit(context.Background(), validInput())
	assert.Error(t, err)
	assert.Nil(t, sub)
	assert.Empty(t, fieldErrs)
	// Notification is only attempted after persistence succeeds
	assert.Empty(t, notifier.notified)
}

func TestSubmitWithoutNotifier(t *testing.T) {
	svc := NewService(&fakeCreator{}, nil)
	sub, fieldErrs, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.NotNil(t, sub)
}
