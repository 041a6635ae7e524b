package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/academiahq/academia/core"
)

// Subscription plans
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// Years of study
const (
	Year1 = "year1"
	Year2 = "year2"
	Year3 = "year3"
	Year4 = "year4"
)

var (
	Plans = []string{PlanFree, PlanPro}
	Years = []string{Year1, Year2, Year3, Year4}
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	CollegeName  string    `json:"college_name"`
	Course       string    `json:"course"`
	YearOfStudy  string    `json:"year_of_study"`
	TargetCareer string    `json:"target_career"`
	Plan         string    `json:"plan"`
	IsActive     bool      `json:"is_active"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
	LastLogin    time.Time `json:"last_login"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsPro() bool {
	return u.Plan == PlanPro
}

// NewUser contains information needed to register a new User.
type NewUser struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (nu *NewUser) Validate(svc *Service) error {
	nu.FullName = core.CleanString(nu.FullName)
	nu.Email = core.CleanString(nu.Email, true /* lower */)

	if err := core.Validate.Struct(nu); err != nil {
		return err
	}
	return svc.CheckUniqueness(nu.Email)
}

// UpdateProfile defines what profile information may be provided by the user.
type UpdateProfile struct {
	FullName     string `json:"full_name"`
	CollegeName  string `json:"college_name"`
	Course       string `json:"course"`
	YearOfStudy  string `json:"year_of_study" validate:"omitempty,yearofstudy"`
	TargetCareer string `json:"target_career"`
}

func (up *UpdateProfile) Validate(origUsr User) error {
	name := core.CleanString(up.FullName)
	if name != "" {
		up.FullName = name
	} else {
		up.FullName = origUsr.FullName
	}

	up.CollegeName = core.CleanString(up.CollegeName)
	up.Course = core.CleanString(up.Course)
	up.TargetCareer = core.CleanString(up.TargetCareer)
	up.YearOfStudy = core.CleanString(up.YearOfStudy, true /* lower */)
	if up.YearOfStudy == "" {
		up.YearOfStudy = origUsr.YearOfStudy
	}

	return core.Validate.Struct(up)
}
