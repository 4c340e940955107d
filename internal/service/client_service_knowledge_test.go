package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/qa-console/internal/adapter"
	"github.com/MKhiriev/qa-console/internal/app"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/internal/mock"
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/internal/validators"
	"github.com/MKhiriev/qa-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestKnowledgeSvc(t *testing.T, ctrl *gomock.Controller) (ClientKnowledgeService, *mock.MockKnowledgeAPI, *recordedNotes) {
	t.Helper()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockKnowledge := mock.NewMockKnowledgeAPI(ctrl)
	mockAdapter.EXPECT().Knowledge().Return(mockKnowledge).AnyTimes()

	notes := &recordedNotes{}
	return NewClientKnowledgeService(mockAdapter, notes, logger.Nop()), mockKnowledge, notes
}

func strPtr(s string) *string { return &s }

func TestClientKnowledgeService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKnowledge, _ := newTestKnowledgeSvc(t, ctrl)
	ctx := context.Background()

	params := models.KnowledgeListParams{Skip: 20, Limit: 20, Category: "billing"}
	want := models.KnowledgeList{Items: []models.Knowledge{{ID: 1}}, Total: 21}
	mockKnowledge.EXPECT().GetList(ctx, params).Return(want, nil)

	got, err := svc.List(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientKnowledgeService_List_InvalidParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, notes := newTestKnowledgeSvc(t, ctrl)

	_, err := svc.List(context.Background(), models.KnowledgeListParams{Limit: validators.MaxListLimit + 1})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidLimit)
	require.Len(t, notes.items, 1)
	assert.Equal(t, notify.LevelWarning, notes.items[0].Level)
}

func TestClientKnowledgeService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKnowledge, _ := newTestKnowledgeSvc(t, ctrl)
	ctx := context.Background()

	mockKnowledge.EXPECT().Get(ctx, int64(9)).Return(models.Knowledge{}, &adapter.APIError{Code: 404, Message: "not found"})

	_, err := svc.Get(ctx, 9)
	assert.ErrorIs(t, err, ErrKnowledgeNotFound)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestClientKnowledgeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKnowledge, notes := newTestKnowledgeSvc(t, ctrl)
	ctx := context.Background()

	item := models.KnowledgeCreate{Question: "q", Answer: "a", Category: strPtr("billing")}
	mockKnowledge.EXPECT().Create(ctx, item).Return(models.KnowledgeRef{ID: 5}, nil)

	ref, err := svc.Create(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, int64(5), ref.ID)
	require.Len(t, notes.items, 1)
	assert.Equal(t, notify.LevelSuccess, notes.items[0].Level)
	assert.Equal(t, app.MsgKnowledgeCreated, notes.items[0].Message)
}

func TestClientKnowledgeService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		item    models.KnowledgeCreate
		wantErr error
	}{
		{name: "blank question", item: models.KnowledgeCreate{Question: " ", Answer: "a"}, wantErr: validators.ErrEmptyQuestion},
		{name: "blank answer", item: models.KnowledgeCreate{Question: "q"}, wantErr: validators.ErrEmptyAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, _ := newTestKnowledgeSvc(t, ctrl)

			_, err := svc.Create(context.Background(), tt.item)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientKnowledgeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKnowledge, notes := newTestKnowledgeSvc(t, ctrl)
	ctx := context.Background()

	status := models.KnowledgeStatusPublished
	update := models.KnowledgeUpdate{Status: &status}
	mockKnowledge.EXPECT().Update(ctx, int64(3), update).Return(models.KnowledgeRef{ID: 3}, nil)

	ref, err := svc.Update(ctx, 3, update)
	require.NoError(t, err)
	assert.Equal(t, int64(3), ref.ID)
	require.Len(t, notes.items, 1)
	assert.Equal(t, app.MsgKnowledgeUpdated, notes.items[0].Message)
}

func TestClientKnowledgeService_Update_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestKnowledgeSvc(t, ctrl)

	_, err := svc.Update(context.Background(), 3, models.KnowledgeUpdate{})
	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)
}

func TestClientKnowledgeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKnowledge, notes := newTestKnowledgeSvc(t, ctrl)
	ctx := context.Background()

	mockKnowledge.EXPECT().Delete(ctx, int64(8)).Return(models.KnowledgeRef{ID: 8}, nil)

	_, err := svc.Delete(ctx, 8)
	require.NoError(t, err)
	require.Len(t, notes.items, 1)
	assert.Equal(t, app.MsgKnowledgeDeleted, notes.items[0].Message)
}

func TestClientKnowledgeService_Delete_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKnowledge, notes := newTestKnowledgeSvc(t, ctrl)
	ctx := context.Background()

	mockKnowledge.EXPECT().Delete(ctx, int64(0)).Return(models.KnowledgeRef{}, adapter.ErrInvalidID)

	_, err := svc.Delete(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Empty(t, notes.items)
}

func TestClientKnowledgeService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKnowledge, _ := newTestKnowledgeSvc(t, ctrl)
	ctx := context.Background()

	want := models.KnowledgeList{Items: []models.Knowledge{{ID: 2, Question: "refund"}}, Total: 1}
	mockKnowledge.EXPECT().Search(ctx, "refund").Return(want, nil)

	got, err := svc.Search(ctx, "refund")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientKnowledgeService_Search_BlankKeyword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestKnowledgeSvc(t, ctrl)

	_, err := svc.Search(context.Background(), "  ")
	assert.ErrorIs(t, err, validators.ErrEmptyKeyword)
}
