package utils

import (
	"testing"

	"github.com/TechnetDev/kaamhai-backend-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDb(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Employee{}, &models.EmployeeDocument{}))
	return db
}

func TestIsEmployeeVerifiedUnknownEmployee(t *testing.T) {
	db := openTestDb(t)

	_, err := IsEmployeeVerified(db, 42)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestIsEmployeeVerifiedConjunction(t *testing.T) {
	cases := []struct {
		name     string
		aadhaar  bool
		face     bool
		personal bool
		prof     bool
		want     bool
	}{
		{"all completed", true, true, true, true, true},
		{"aadhaar missing", false, true, true, true, false},
		{"face photo missing", true, false, true, true, false},
		{"personal info missing", true, true, false, true, false},
		{"professional info missing", true, true, true, false, false},
		{"nothing completed", false, false, false, false, false},
	}

	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := openTestDb(t)

			employee := models.Employee{
				Name:   "Ravi Kumar",
				Mobile: "987654321" + string(rune('0'+i)),
			}
			employee.PersonalInfo.IsCompleted = tc.personal
			employee.ProfessionalInfo.IsCompleted = tc.prof
			require.NoError(t, db.Create(&employee).Error)

			require.NoError(t, db.Create(&models.EmployeeDocument{
				EmployeeID: employee.ID, Type: models.DocumentAadhaarCard, IsCompleted: tc.aadhaar,
			}).Error)
			require.NoError(t, db.Create(&models.EmployeeDocument{
				EmployeeID: employee.ID, Type: models.DocumentFacePhoto, IsCompleted: tc.face,
			}).Error)

			got, err := IsEmployeeVerified(db, employee.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsEmployeeVerifiedMissingDocumentRows(t *testing.T) {
	db := openTestDb(t)

	employee := models.Employee{Name: "Ravi Kumar", Mobile: "9876543210"}
	employee.PersonalInfo.IsCompleted = true
	employee.ProfessionalInfo.IsCompleted = true
	require.NoError(t, db.Create(&employee).Error)

	// No document rows at all: the aggregate evaluates false, not an error
	got, err := IsEmployeeVerified(db, employee.ID)
	require.NoError(t, err)
	assert.False(t, got)
}
