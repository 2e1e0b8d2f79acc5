package workflows_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/mocks"
	"github.com/vtopia/nft-assistant/internal/workflows"
)

type executorMocks struct {
	ctrl     *gomock.Controller
	ingestor *mocks.MockIngestor
	activity *mocks.MockActivity
}

func setupExecutor(t *testing.T) (*executorMocks, workflows.Executor) {
	ctrl := gomock.NewController(t)
	m := &executorMocks{
		ctrl:     ctrl,
		ingestor: mocks.NewMockIngestor(ctrl),
		activity: mocks.NewMockActivity(ctrl),
	}
	m.activity.EXPECT().GetInfo(gomock.Any()).Return(activity.Info{Attempt: 1}).AnyTimes()
	return m, workflows.NewExecutor(m.ingestor, m.activity)
}

func TestExecutor_IngestCollection(t *testing.T) {
	m, exec := setupExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	summary := &domain.IngestionSummary{Ref: domain.CollectionRef{CollectionID: "hm-okb", CanonicalName: "Okay Bears"}, Cached: true}
	m.ingestor.EXPECT().EnsureIngested(ctx, "Okay Bears").Return(summary, nil)

	got, err := exec.IngestCollection(ctx, "Okay Bears")
	require.NoError(t, err)
	assert.Equal(t, summary, got)
}

func TestExecutor_IngestCollection_Errors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		nonRetryable bool
		errType      string
	}{
		{
			name:         "not found",
			err:          fmt.Errorf("%w: %q", domain.ErrCollectionNotFound, "Nope"),
			nonRetryable: true,
			errType:      workflows.ERR_TYPE_NOT_FOUND,
		},
		{
			name:         "validation",
			err:          domain.NewValidationError("collection_name", "collection name is required"),
			nonRetryable: true,
			errType:      workflows.ERR_TYPE_VALIDATION,
		},
		{
			name: "transient",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, exec := setupExecutor(t)
			defer m.ctrl.Finish()

			ctx := context.Background()
			m.ingestor.EXPECT().EnsureIngested(ctx, "Nope").Return(nil, tt.err)

			got, err := exec.IngestCollection(ctx, "Nope")
			assert.Nil(t, got)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)

			var appErr *temporal.ApplicationError
			if tt.nonRetryable {
				require.ErrorAs(t, err, &appErr)
				assert.True(t, appErr.NonRetryable())
				assert.Equal(t, tt.errType, appErr.Type())
			} else {
				assert.False(t, errors.As(err, &appErr))
			}
		})
	}
}
