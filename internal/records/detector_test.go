package records_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/records"
	"github.com/harperreed/fitlog/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// database/sql keeps a connection opener goroutine per pool
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

var (
	mon = time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	wed = time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC)
)

func TestDetector_ExercisePR_NoSets(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrecordsRepo(ctrl)
	detector := records.NewDetector(repoMock)

	repoMock.EXPECT().GetSetsByExercise(gomock.Any(), "bench").Return([]*models.WorkoutSet{}, nil)

	pr, err := detector.ExercisePR(context.Background(), "bench")
	require.NoError(t, err)
	assert.Nil(t, pr)
}

func TestDetector_ExercisePR_FirstHeaviestWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrecordsRepo(ctrl)
	detector := records.NewDetector(repoMock)

	repoMock.EXPECT().GetSetsByExercise(gomock.Any(), "bench").Return([]*models.WorkoutSet{
		{ID: "s1", WorkoutID: "w1", ExerciseID: "bench", Reps: 5, Weight: 80},
		{ID: "s2", WorkoutID: "w1", ExerciseID: "bench", Reps: 3, Weight: 100},
		{ID: "s3", WorkoutID: "w2", ExerciseID: "bench", Reps: 1, Weight: 100},
	}, nil)
	repoMock.EXPECT().GetExercise(gomock.Any(), "bench").Return(&models.Exercise{ID: "bench", Name: "Bench Press"}, nil)
	repoMock.EXPECT().GetWorkout(gomock.Any(), "w1").Return(&models.Workout{ID: "w1", Date: mon}, nil)

	pr, err := detector.ExercisePR(context.Background(), "bench")
	require.NoError(t, err)
	require.NotNil(t, pr)
	assert.Equal(t, records.PersonalRecord{
		ExerciseID:   "bench",
		ExerciseName: "Bench Press",
		Weight:       100,
		Reps:         3,
		Date:         mon,
		WorkoutID:    "w1",
	}, *pr)
}

func TestDetector_ExercisePR_MissingReferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrecordsRepo(ctrl)
	detector := records.NewDetector(repoMock)

	repoMock.EXPECT().GetSetsByExercise(gomock.Any(), "gone").Return([]*models.WorkoutSet{
		{ID: "s1", WorkoutID: "w-gone", ExerciseID: "gone", Reps: 5, Weight: 60},
	}, nil)
	repoMock.EXPECT().GetExercise(gomock.Any(), "gone").Return(nil, &storage.NotFoundError{Entity: "exercise", ID: "gone"})
	repoMock.EXPECT().GetWorkout(gomock.Any(), "w-gone").Return(nil, &storage.NotFoundError{Entity: "workout", ID: "w-gone"})

	pr, err := detector.ExercisePR(context.Background(), "gone")
	require.NoError(t, err)
	require.NotNil(t, pr)
	assert.Equal(t, records.UnknownExercise, pr.ExerciseName)
	assert.True(t, pr.Date.IsZero())
	assert.Equal(t, 60.0, pr.Weight)
}

func TestDetector_ExercisePR_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrecordsRepo(ctrl)
	detector := records.NewDetector(repoMock)

	repoMock.EXPECT().GetSetsByExercise(gomock.Any(), "bench").Return(nil, assert.AnError)

	pr, err := detector.ExercisePR(context.Background(), "bench")
	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, pr)
}

func TestDetector_AllPRs(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrecordsRepo(ctrl)
	detector := records.NewDetector(repoMock)

	repoMock.EXPECT().GetAllSets(gomock.Any()).Return([]*models.WorkoutSet{
		{ID: "s1", WorkoutID: "w1", ExerciseID: "curl", Reps: 10, Weight: 15},
		{ID: "s2", WorkoutID: "w1", ExerciseID: "squat", Reps: 5, Weight: 120},
		{ID: "s3", WorkoutID: "w2", ExerciseID: "squat", Reps: 3, Weight: 140},
		{ID: "s4", WorkoutID: "w2", ExerciseID: "bench", Reps: 5, Weight: 90},
		{ID: "s5", WorkoutID: "w2", ExerciseID: "curl", Reps: 8, Weight: 17.5},
	}, nil)
	repoMock.EXPECT().GetAllExercises(gomock.Any()).Return([]*models.Exercise{
		{ID: "curl", Name: "Dumbbell Curl"},
		{ID: "squat", Name: "Back Squat"},
	}, nil)
	repoMock.EXPECT().GetAllWorkouts(gomock.Any()).Return([]*models.Workout{
		{ID: "w2", Date: wed},
		{ID: "w1", Date: mon},
	}, nil)

	prs, err := detector.AllPRs(context.Background())
	require.NoError(t, err)
	require.Len(t, prs, 3)

	assert.Equal(t, "squat", prs[0].ExerciseID)
	assert.Equal(t, 140.0, prs[0].Weight)
	assert.Equal(t, wed, prs[0].Date)

	assert.Equal(t, "bench", prs[1].ExerciseID)
	assert.Equal(t, records.UnknownExercise, prs[1].ExerciseName)

	assert.Equal(t, "curl", prs[2].ExerciseID)
	assert.Equal(t, 17.5, prs[2].Weight)
	assert.Equal(t, 8, prs[2].Reps)
}

func TestDetector_AllPRs_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrecordsRepo(ctrl)
	detector := records.NewDetector(repoMock)

	repoMock.EXPECT().GetAllSets(gomock.Any()).Return([]*models.WorkoutSet{}, nil)

	prs, err := detector.AllPRs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, prs)
	assert.Empty(t, prs)
}

func TestDetector_IsPR(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrecordsRepo(ctrl)
	detector := records.NewDetector(repoMock)
	ctx := context.Background()

	repoMock.EXPECT().GetSetsByExercise(gomock.Any(), "new").Return(nil, nil)
	repoMock.EXPECT().GetSetsByExercise(gomock.Any(), "bench").Return([]*models.WorkoutSet{
		{Weight: 80}, {Weight: 100}, {Weight: 95},
	}, nil).Times(3)

	isPR, err := detector.IsPR(ctx, "new", 1)
	require.NoError(t, err)
	assert.True(t, isPR, "first set of an exercise is always a PR")

	isPR, err = detector.IsPR(ctx, "bench", 100)
	require.NoError(t, err)
	assert.False(t, isPR, "matching the record is not a PR")

	isPR, err = detector.IsPR(ctx, "bench", 100.5)
	require.NoError(t, err)
	assert.True(t, isPR)

	isPR, err = detector.IsPR(ctx, "bench", 99)
	require.NoError(t, err)
	assert.False(t, isPR)
}

func TestDetector_PRsByMuscleGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrecordsRepo(ctrl)
	detector := records.NewDetector(repoMock)

	repoMock.EXPECT().GetExercisesByMuscleGroup(gomock.Any(), models.MuscleLegs).Return([]*models.Exercise{
		{ID: "squat", Name: "Back Squat", MuscleGroup: models.MuscleLegs},
		{ID: "lunge", Name: "Lunge", MuscleGroup: models.MuscleLegs},
	}, nil)
	repoMock.EXPECT().GetAllSets(gomock.Any()).Return([]*models.WorkoutSet{
		{WorkoutID: "w1", ExerciseID: "squat", Reps: 5, Weight: 120},
		{WorkoutID: "w1", ExerciseID: "bench", Reps: 5, Weight: 90},
	}, nil)
	repoMock.EXPECT().GetAllExercises(gomock.Any()).Return([]*models.Exercise{
		{ID: "squat", Name: "Back Squat"},
		{ID: "bench", Name: "Bench Press"},
	}, nil)
	repoMock.EXPECT().GetAllWorkouts(gomock.Any()).Return([]*models.Workout{{ID: "w1", Date: mon}}, nil)

	prs, err := detector.PRsByMuscleGroup(context.Background(), models.MuscleLegs)
	require.NoError(t, err)
	require.Len(t, prs, 1)
	assert.Equal(t, "squat", prs[0].ExerciseID)
}

// Against a real store: the record equals the max of random weights and
// only strictly heavier candidates count as new records.
func TestDetector_PRMonotonicity(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "fitlog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	faker := gofakeit.New(7)
	detector := records.NewDetector(db)

	exID, err := db.AddExercise(ctx, models.NewExercise("Deadlift", models.MuscleBack, models.EquipmentBarbell))
	require.NoError(t, err)

	var heaviest float64
	for w := 0; w < 5; w++ {
		wID, err := db.AddWorkout(ctx, models.NewWorkout(mon.AddDate(0, 0, w*2)))
		require.NoError(t, err)
		for s := 1; s <= 4; s++ {
			weight := float64(faker.Number(40, 200)) + float64(faker.Number(0, 3))*0.25
			if weight > heaviest {
				heaviest = weight
			}
			_, err := db.AddSet(ctx, models.NewWorkoutSet(wID, exID, s, faker.Number(1, 12), weight))
			require.NoError(t, err)
		}
	}

	pr, err := detector.ExercisePR(ctx, exID)
	require.NoError(t, err)
	require.NotNil(t, pr)
	assert.Equal(t, heaviest, pr.Weight)
	assert.Equal(t, "Deadlift", pr.ExerciseName)
	assert.False(t, pr.Date.IsZero())

	isPR, err := detector.IsPR(ctx, exID, heaviest)
	require.NoError(t, err)
	assert.False(t, isPR)

	isPR, err = detector.IsPR(ctx, exID, heaviest+0.25)
	require.NoError(t, err)
	assert.True(t, isPR)
}
