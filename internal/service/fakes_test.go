package service

// In-memory repository fakes for service tests. They implement just enough
// of the repository contracts to exercise the service logic, including the
// not-found and upsert semantics the services depend on.

import (
	"context"

	"dmytrok/workout-app/internal/domain"
	"dmytrok/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- users ---

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	stored := *user
	r.users[user.ID] = &stored
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// Update mirrors the mongo repository: only the profile fields are written.
func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = user.Name
	stored.Bio = user.Bio
	stored.AvatarURL = user.AvatarURL
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// --- programs ---

type fakeProgramRepo struct {
	programs map[primitive.ObjectID]*domain.WorkoutProgram
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{programs: make(map[primitive.ObjectID]*domain.WorkoutProgram)}
}

func (r *fakeProgramRepo) Create(_ context.Context, program *domain.WorkoutProgram) (primitive.ObjectID, error) {
	if program.ID.IsZero() {
		program.ID = primitive.NewObjectID()
	}
	stored := *program
	r.programs[program.ID] = &stored
	return program.ID, nil
}

func (r *fakeProgramRepo) GetByUser(_ context.Context, userID primitive.ObjectID) ([]domain.WorkoutProgram, error) {
	var out []domain.WorkoutProgram
	for _, p := range r.programs {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProgramRepo) GetByIDAndUser(_ context.Context, id, userID primitive.ObjectID) (*domain.WorkoutProgram, error) {
	p, ok := r.programs[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProgramRepo) Update(_ context.Context, program *domain.WorkoutProgram) error {
	if _, ok := r.programs[program.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *program
	r.programs[program.ID] = &stored
	return nil
}

func (r *fakeProgramRepo) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	p, ok := r.programs[id]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.programs, id)
	return nil
}

// --- training days ---

type fakeTrainingDayRepo struct {
	days map[primitive.ObjectID]*domain.TrainingDay
}

func newFakeTrainingDayRepo() *fakeTrainingDayRepo {
	return &fakeTrainingDayRepo{days: make(map[primitive.ObjectID]*domain.TrainingDay)}
}

func copyDay(day *domain.TrainingDay) *domain.TrainingDay {
	cp := *day
	cp.MuscleGroups = make([]domain.MuscleGroupEntry, len(day.MuscleGroups))
	for i, mg := range day.MuscleGroups {
		cp.MuscleGroups[i] = mg
		cp.MuscleGroups[i].Exercises = append([]domain.ExerciseEntry(nil), mg.Exercises...)
	}
	return &cp
}

func (r *fakeTrainingDayRepo) Create(_ context.Context, day *domain.TrainingDay) (primitive.ObjectID, error) {
	if day.ID.IsZero() {
		day.ID = primitive.NewObjectID()
	}
	r.days[day.ID] = copyDay(day)
	return day.ID, nil
}

func (r *fakeTrainingDayRepo) GetByProgram(_ context.Context, programID primitive.ObjectID) ([]domain.TrainingDay, error) {
	var out []domain.TrainingDay
	for _, d := range r.days {
		if d.ProgramID == programID {
			out = append(out, *copyDay(d))
		}
	}
	return out, nil
}

func (r *fakeTrainingDayRepo) GetByIDAndProgram(_ context.Context, id, programID primitive.ObjectID) (*domain.TrainingDay, error) {
	d, ok := r.days[id]
	if !ok || d.ProgramID != programID {
		return nil, repository.ErrNotFound
	}
	return copyDay(d), nil
}

func (r *fakeTrainingDayRepo) Update(_ context.Context, day *domain.TrainingDay) error {
	if _, ok := r.days[day.ID]; !ok {
		return repository.ErrNotFound
	}
	r.days[day.ID] = copyDay(day)
	return nil
}

func (r *fakeTrainingDayRepo) DeleteByProgram(_ context.Context, programID primitive.ObjectID) error {
	for id, d := range r.days {
		if d.ProgramID == programID {
			delete(r.days, id)
		}
	}
	return nil
}

// --- catalog ---

type fakeMuscleGroupRepo struct {
	groups []domain.MuscleGroup
}

func (r *fakeMuscleGroupRepo) GetAll(_ context.Context) ([]domain.MuscleGroup, error) {
	return append([]domain.MuscleGroup(nil), r.groups...), nil
}

func (r *fakeMuscleGroupRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.MuscleGroup, error) {
	for i := range r.groups {
		if r.groups[i].ID == id {
			cp := r.groups[i]
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeExerciseRepo struct {
	exercises []domain.Exercise
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	for i := range r.exercises {
		if r.exercises[i].ID == id {
			cp := r.exercises[i]
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeExerciseRepo) List(_ context.Context, muscleGroupID *primitive.ObjectID) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, ex := range r.exercises {
		if muscleGroupID == nil || ex.MuscleGroupID == *muscleGroupID {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) SetVideoKey(_ context.Context, id primitive.ObjectID, videoKey string) error {
	for i := range r.exercises {
		if r.exercises[i].ID == id {
			r.exercises[i].VideoKey = videoKey
			return nil
		}
	}
	return repository.ErrNotFound
}

// --- performance entries ---

type performanceKey struct {
	userID        primitive.ObjectID
	programID     primitive.ObjectID
	trainingDayID primitive.ObjectID
	date          string
}

type fakePerformanceRepo struct {
	entries map[performanceKey]*domain.PerformanceEntry
}

func newFakePerformanceRepo() *fakePerformanceRepo {
	return &fakePerformanceRepo{entries: make(map[performanceKey]*domain.PerformanceEntry)}
}

func keyOf(entry *domain.PerformanceEntry) performanceKey {
	return performanceKey{
		userID:        entry.UserID,
		programID:     entry.ProgramID,
		trainingDayID: entry.TrainingDayID,
		date:          entry.Date.Format("2006-01-02"),
	}
}

func (r *fakePerformanceRepo) Upsert(_ context.Context, entry *domain.PerformanceEntry) (*domain.PerformanceEntry, error) {
	key := keyOf(entry)
	stored := *entry
	if existing, ok := r.entries[key]; ok {
		stored.ID = existing.ID
	} else if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	r.entries[key] = &stored
	cp := stored
	return &cp, nil
}

func (r *fakePerformanceRepo) GetByWeek(_ context.Context, userID, programID primitive.ObjectID, weekNumber int) ([]domain.PerformanceEntry, error) {
	var out []domain.PerformanceEntry
	for _, e := range r.entries {
		if e.UserID == userID && e.ProgramID == programID && e.WeekNumber == weekNumber {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakePerformanceRepo) GetByProgram(_ context.Context, userID, programID primitive.ObjectID) ([]domain.PerformanceEntry, error) {
	var out []domain.PerformanceEntry
	for _, e := range r.entries {
		if e.UserID == userID && e.ProgramID == programID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakePerformanceRepo) DeleteByProgram(_ context.Context, programID primitive.ObjectID) error {
	for key, e := range r.entries {
		if e.ProgramID == programID {
			delete(r.entries, key)
		}
	}
	return nil
}
