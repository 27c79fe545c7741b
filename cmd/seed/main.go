// Command seed populates the shared muscle group and exercise catalog. It
// wipes both collections first, so re-running it never duplicates data.
package main

import (
	"context"
	"time"

	"dmytrok/workout-app/internal/config"
	"dmytrok/workout-app/internal/domain"
	mongorepo "dmytrok/workout-app/internal/repository/mongo"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// seedExercise is an exercise definition keyed by muscle group name; the
// group reference is resolved to an ObjectID at insert time.
type seedExercise struct {
	name        string
	group       domain.MuscleGroupName
	equipment   string
	difficulty  string
	description string
}

var muscleGroupNames = []domain.MuscleGroupName{
	domain.MuscleGroupChest,
	domain.MuscleGroupBack,
	domain.MuscleGroupShoulders,
	domain.MuscleGroupBiceps,
	domain.MuscleGroupTriceps,
	domain.MuscleGroupQuadriceps,
	domain.MuscleGroupGlutesHamstring,
	domain.MuscleGroupCalves,
	domain.MuscleGroupAbs,
	domain.MuscleGroupOther,
}

var seedExercises = []seedExercise{
	// Chest
	{"Barbell Bench Press", domain.MuscleGroupChest, "barbell", "intermediate", "Flat bench press with a barbell."},
	{"Incline Dumbbell Press", domain.MuscleGroupChest, "dumbbell", "intermediate", "Press on an incline bench targeting the upper chest."},
	{"Push-Up", domain.MuscleGroupChest, "bodyweight", "beginner", "Standard push-up."},
	{"Cable Fly", domain.MuscleGroupChest, "machine", "beginner", "Chest fly on the cable crossover."},
	// Back
	{"Deadlift", domain.MuscleGroupBack, "barbell", "advanced", "Conventional deadlift from the floor."},
	{"Pull-Up", domain.MuscleGroupBack, "bodyweight", "intermediate", "Overhand grip pull-up."},
	{"Barbell Row", domain.MuscleGroupBack, "barbell", "intermediate", "Bent-over row with a barbell."},
	{"Lat Pulldown", domain.MuscleGroupBack, "machine", "beginner", "Wide grip pulldown on the lat machine."},
	// Shoulders
	{"Overhead Press", domain.MuscleGroupShoulders, "barbell", "intermediate", "Standing barbell press overhead."},
	{"Lateral Raise", domain.MuscleGroupShoulders, "dumbbell", "beginner", "Dumbbell raise to the side for the lateral delts."},
	{"Face Pull", domain.MuscleGroupShoulders, "machine", "beginner", "Cable pull toward the face for rear delts."},
	// Biceps
	{"Barbell Curl", domain.MuscleGroupBiceps, "barbell", "beginner", "Standing curl with a straight bar."},
	{"Hammer Curl", domain.MuscleGroupBiceps, "dumbbell", "beginner", "Neutral grip dumbbell curl."},
	// Triceps
	{"Close-Grip Bench Press", domain.MuscleGroupTriceps, "barbell", "intermediate", "Bench press with a narrow grip."},
	{"Triceps Pushdown", domain.MuscleGroupTriceps, "machine", "beginner", "Cable pushdown with a rope or bar."},
	// Quadriceps
	{"Back Squat", domain.MuscleGroupQuadriceps, "barbell", "intermediate", "High-bar barbell squat."},
	{"Leg Press", domain.MuscleGroupQuadriceps, "machine", "beginner", "45-degree leg press."},
	{"Walking Lunge", domain.MuscleGroupQuadriceps, "dumbbell", "beginner", "Alternating lunges with dumbbells."},
	// Glutes & hamstrings
	{"Romanian Deadlift", domain.MuscleGroupGlutesHamstring, "barbell", "intermediate", "Hip hinge with a soft knee bend."},
	{"Hip Thrust", domain.MuscleGroupGlutesHamstring, "barbell", "beginner", "Barbell hip thrust off a bench."},
	{"Leg Curl", domain.MuscleGroupGlutesHamstring, "machine", "beginner", "Lying hamstring curl."},
	// Calves
	{"Standing Calf Raise", domain.MuscleGroupCalves, "machine", "beginner", "Calf raise on the standing machine."},
	{"Seated Calf Raise", domain.MuscleGroupCalves, "machine", "beginner", "Calf raise seated, knees bent."},
	// Abs
	{"Plank", domain.MuscleGroupAbs, "bodyweight", "beginner", "Front plank hold."},
	{"Hanging Leg Raise", domain.MuscleGroupAbs, "bodyweight", "intermediate", "Leg raise hanging from a bar."},
	{"Cable Crunch", domain.MuscleGroupAbs, "machine", "beginner", "Kneeling crunch on the cable stack."},
	// Other
	{"Farmer's Carry", domain.MuscleGroupOther, "dumbbell", "beginner", "Loaded carry for grip and trunk."},
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.WithError(err).Fatal("Could not load config")
	}

	client, err := mongorepo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.WithError(err).Fatal("Could not connect to MongoDB")
	}
	defer func() {
		if err := mongorepo.DisconnectDB(client); err != nil {
			log.WithError(err).Error("Failed to disconnect MongoDB")
		}
	}()

	db := client.Database(cfg.Database.Name)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seedCatalog(ctx, db); err != nil {
		log.WithError(err).Fatal("Seeding failed")
	}
	log.Info("Seeding completed successfully")
}

func seedCatalog(ctx context.Context, db *mongo.Database) error {
	muscleGroups := db.Collection("muscle_groups")
	exercises := db.Collection("exercises")

	// Clear existing data to avoid duplicates on re-run.
	if _, err := muscleGroups.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if _, err := exercises.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	log.Info("Cleared muscle group and exercise collections")

	now := time.Now()

	groupIDs := make(map[domain.MuscleGroupName]primitive.ObjectID, len(muscleGroupNames))
	groupDocs := make([]interface{}, 0, len(muscleGroupNames))
	for _, name := range muscleGroupNames {
		id := primitive.NewObjectID()
		groupIDs[name] = id
		groupDocs = append(groupDocs, domain.MuscleGroup{
			ID:        id,
			Name:      name,
			Exercises: []primitive.ObjectID{},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if _, err := muscleGroups.InsertMany(ctx, groupDocs); err != nil {
		return err
	}
	log.WithField("count", len(groupDocs)).Info("Inserted muscle groups")

	exercisesByGroup := make(map[domain.MuscleGroupName][]primitive.ObjectID)
	exerciseDocs := make([]interface{}, 0, len(seedExercises))
	for _, ex := range seedExercises {
		id := primitive.NewObjectID()
		exerciseDocs = append(exerciseDocs, domain.Exercise{
			ID:            id,
			Name:          ex.name,
			MuscleGroupID: groupIDs[ex.group],
			Equipment:     ex.equipment,
			Difficulty:    ex.difficulty,
			Description:   ex.description,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		exercisesByGroup[ex.group] = append(exercisesByGroup[ex.group], id)
	}
	if _, err := exercises.InsertMany(ctx, exerciseDocs); err != nil {
		return err
	}
	log.WithField("count", len(exerciseDocs)).Info("Inserted exercises")

	// Backfill the group -> exercises references.
	for name, ids := range exercisesByGroup {
		_, err := muscleGroups.UpdateByID(ctx, groupIDs[name], bson.M{
			"$set": bson.M{"exercises": ids, "updatedAt": now},
		})
		if err != nil {
			return err
		}
	}
	log.Info("Updated muscle groups with exercise references")
	return nil
}
