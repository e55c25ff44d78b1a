package main

import (
	"context"
	"flag"
	"fmt"
	"hospadmin-service/internal/app/config"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/app/drivers/database"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/app/services/auth"
	"hospadmin-service/internal/app/services/catalogs"
	"hospadmin-service/internal/app/services/patients"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/utils"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Seeds a development database: master catalogs, a staff login and a run of
// synthetic patients. Inserts are throttled so a large run does not starve a
// shared MongoDB instance.

var firstNames = []string{"María", "Carmen", "Lucía", "Paula", "Sofía", "José", "Antonio", "Manuel", "Javier", "Daniel"}
var surnames = []string{"García", "Martínez", "López", "Sánchez", "Pérez", "Gómez", "Fernández", "Moreno", "Jiménez", "Ruiz"}
var sexes = []string{"hombre", "mujer"}
var dniLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

func main() {
	patientCount := flag.Int("patients", 500, "number of synthetic patients to insert")
	insertsPerSecond := flag.Float64("rate", 50, "maximum patient inserts per second")
	staffEmail := flag.String("staff-email", "admision@hospital.local", "email of the seeded staff account")
	staffPassword := flag.String("staff-password", "admision123", "password of the seeded staff account")
	flag.Parse()

	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)
	defer mongoDB.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := database.EnsureIndexes(ctx, mongoDB, driverConfig.MongoDB.DbName); err != nil {
		logrus.Fatalf("Error ensuring MongoDB indexes: %v", err)
	}

	catalogUsecase := catalogs.NewCatalogUsecase(catalogs.NewCatalogMongoRepository(mongoDB, driverConfig.MongoDB.DbName))
	if err := catalogUsecase.SeedMasterData(ctx); err != nil {
		logrus.Warnf("Skipping catalog seed: %v", err)
	} else {
		logrus.Println("Master data catalogs seeded")
	}

	userRepository := auth.NewUserMongoRepository(mongoDB.Database(driverConfig.MongoDB.DbName))
	if err := seedStaffUser(ctx, userRepository, *staffEmail, *staffPassword); err != nil {
		logrus.Fatalf("Error seeding staff user: %v", err)
	}

	patientRepository := patients.NewPatientMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	inserted, err := seedPatients(ctx, patientRepository, *staffEmail, *patientCount, *insertsPerSecond)
	if err != nil {
		logrus.Fatalf("Error seeding patients: %v", err)
	}

	logrus.Printf("Seed finished: %d patients inserted", inserted)
}

func seedStaffUser(ctx context.Context, userRepository contracts.UserRepository, email, password string) error {
	existing, err := userRepository.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		logrus.Printf("Staff account %s already exists, skipping", email)
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:    email,
		Name:     "Personal de Admisión",
		Password: hash,
		Role:     "admision",
	}
	user.SetCreatedAtUpdatedAt()

	if _, err := userRepository.Insert(ctx, user); err != nil {
		return err
	}
	logrus.Printf("Staff account %s created", email)
	return nil
}

// seedPatients inserts synthetic records one batch at a time. Each identifier
// set is generated from a run-local uniqueness pool; the unique indexes still
// guard against collisions with pre-existing data.
func seedPatients(ctx context.Context, patientRepository contracts.PatientRepository, author string, count int, insertsPerSecond float64) (int, error) {
	limiter := rate.NewLimiter(rate.Limit(insertsPerSecond), constvars.SeedBatchSize)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	usedDNI := make(map[string]struct{}, count)
	usedSIP := make(map[string]struct{}, count)

	inserted := 0
	for inserted < count {
		batch := constvars.SeedBatchSize
		if remaining := count - inserted; remaining < batch {
			batch = remaining
		}

		for i := 0; i < batch; i++ {
			if err := limiter.Wait(ctx); err != nil {
				return inserted, err
			}

			patient := syntheticPatient(rng, author, usedDNI, usedSIP, inserted)
			if _, err := patientRepository.Insert(ctx, patient); err != nil {
				return inserted, err
			}
			inserted++
		}
		logrus.Printf("Inserted %d/%d patients", inserted, count)
	}
	return inserted, nil
}

func syntheticPatient(rng *rand.Rand, author string, usedDNI, usedSIP map[string]struct{}, ordinal int) *models.Patient {
	surname2 := surnames[rng.Intn(len(surnames))]
	birth := time.Date(1930+rng.Intn(80), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.Local)

	patient := &models.Patient{
		PatientCode: utils.GeneratePatientCode(),
		Name:        firstNames[rng.Intn(len(firstNames))],
		Surname1:    surnames[rng.Intn(len(surnames))],
		Surname2:    &surname2,
		DNI:         uniqueDNI(rng, usedDNI),
		SIP:         uniqueSIP(rng, usedSIP),
		NHC:         fmt.Sprintf("NHC%06d", ordinal+1),
		BirthDate:   birth.Format("2006-01-02"),
		Sex:         sexes[rng.Intn(len(sexes))],
		CreatedBy:   author,
	}
	patient.SetCreatedAtUpdatedAt()
	return patient
}

func uniqueDNI(rng *rand.Rand, used map[string]struct{}) string {
	for {
		number := rng.Intn(100000000)
		dni := fmt.Sprintf("%08d%c", number, dniLetters[number%23])
		if _, taken := used[dni]; !taken {
			used[dni] = struct{}{}
			return dni
		}
	}
}

func uniqueSIP(rng *rand.Rand, used map[string]struct{}) string {
	for {
		sip := fmt.Sprintf("%07d", rng.Intn(10000000))
		if _, taken := used[sip]; !taken {
			used[sip] = struct{}{}
			return sip
		}
	}
}
