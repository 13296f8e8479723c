// internal/model/trainer.go
package model

// SpecialtyStrength is the trainer specialty that carries the higher
// session surcharge. Matched exactly, case-sensitive.
const SpecialtyStrength = "Strength Training"

type Trainer struct {
	ID        int    `db:"trainer_id" json:"trainer_id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
	Specialty string `db:"specialty" json:"specialty"`
}
