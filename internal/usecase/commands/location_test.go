//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-queue/internal/domain/actor"
	"salon-queue/internal/domain/location"
	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/usecase/commands"
	"salon-queue/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLocationPause(t *testing.T) {
	t.Run("owner pauses until a resume time", func(t *testing.T) {
		f := newFixture(t)
		loc := builder.NewLocationBuilder().BuildDomain()
		owner := actor.Actor{ID: uuid.New(), Role: actor.RoleOwner, LocationID: loc.ID()}
		resumeAt := builder.BaseTime.Add(45 * time.Minute)

		f.locations.EXPECT().LockByID(gomock.Any(), loc.ID()).Return(loc, nil)
		f.locations.EXPECT().UpdatePause(gomock.Any(), loc).Return(nil)
		f.feed.EXPECT().Touch(gomock.Any(), loc.ID(), builder.BaseTime).Return(nil)

		st, err := f.locationCmds().Pause(context.Background(), owner, loc.ID(),
			commands.PauseInput{Reason: "lunch", ResumeAt: &resumeAt})

		require.NoError(t, err)
		assert.Equal(t, location.StatePaused, st.State)
		assert.Equal(t, "lunch", st.Reason)
		require.NotNil(t, st.ResumeAt)
		assert.True(t, resumeAt.Equal(*st.ResumeAt))
		require.NotNil(t, loc.Pause())
	})

	t.Run("resume time in the past is rejected", func(t *testing.T) {
		f := newFixture(t)
		loc := builder.NewLocationBuilder().BuildDomain()
		owner := actor.Actor{ID: uuid.New(), Role: actor.RoleOwner, LocationID: loc.ID()}
		past := builder.BaseTime.Add(-time.Minute)

		f.locations.EXPECT().LockByID(gomock.Any(), loc.ID()).Return(loc, nil)

		_, err := f.locationCmds().Pause(context.Background(), owner, loc.ID(), commands.PauseInput{ResumeAt: &past})

		assert.True(t, errs.Is(err, errs.ErrValidation), "got %v", err)
		assert.Nil(t, loc.Pause())
	})

	t.Run("pause outside opening hours still reports CLOSED", func(t *testing.T) {
		f := newFixture(t)
		f.clock.Set(time.Date(2026, 3, 4, 20, 0, 0, 0, time.UTC))
		loc := builder.NewLocationBuilder().BuildDomain()
		owner := actor.Actor{ID: uuid.New(), Role: actor.RoleOwner, LocationID: loc.ID()}

		f.locations.EXPECT().LockByID(gomock.Any(), loc.ID()).Return(loc, nil)
		f.locations.EXPECT().UpdatePause(gomock.Any(), loc).Return(nil)
		f.feed.EXPECT().Touch(gomock.Any(), loc.ID(), gomock.Any()).Return(nil)

		st, err := f.locationCmds().Pause(context.Background(), owner, loc.ID(), commands.PauseInput{Reason: "cleaning"})

		require.NoError(t, err)
		assert.Equal(t, location.StateClosed, st.State)
		require.NotNil(t, st.NextOpenAt)
	})

	t.Run("staff is rejected before any lock is taken", func(t *testing.T) {
		f := newFixture(t)
		locID := uuid.New()
		staff := actor.Actor{ID: uuid.New(), Role: actor.RoleStaff, LocationID: locID}

		_, err := f.locationCmds().Pause(context.Background(), staff, locID, commands.PauseInput{})

		assert.True(t, errs.Is(err, errs.ErrForbidden), "got %v", err)
	})
}

func TestLocationResume(t *testing.T) {
	t.Run("lifts the pause", func(t *testing.T) {
		f := newFixture(t)
		loc := builder.NewLocationBuilder().With(func(b *builder.LocationBuilder) {
			b.Pause = &location.Pause{Reason: "lunch", PausedAt: builder.BaseTime.Add(-10 * time.Minute)}
		}).BuildDomain()
		owner := actor.Actor{ID: uuid.New(), Role: actor.RoleOwner, LocationID: loc.ID()}

		f.locations.EXPECT().LockByID(gomock.Any(), loc.ID()).Return(loc, nil)
		f.locations.EXPECT().UpdatePause(gomock.Any(), loc).Return(nil)
		f.feed.EXPECT().Touch(gomock.Any(), loc.ID(), builder.BaseTime).Return(nil)

		st, err := f.locationCmds().Resume(context.Background(), owner, loc.ID())

		require.NoError(t, err)
		assert.Equal(t, location.StateOpen, st.State)
		assert.Nil(t, loc.Pause())
	})

	t.Run("owner of another location", func(t *testing.T) {
		f := newFixture(t)
		owner := actor.Actor{ID: uuid.New(), Role: actor.RoleOwner, LocationID: uuid.New()}

		_, err := f.locationCmds().Resume(context.Background(), owner, uuid.New())

		assert.True(t, errs.Is(err, errs.ErrForbidden), "got %v", err)
	})
}
