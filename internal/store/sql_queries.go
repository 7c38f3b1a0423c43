package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/aitbenali/go-office-board/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, is_admin)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, email, password_hash, is_admin, two_fa_code, two_fa_code_expires_at, created_at;`

	userColumns = `id, username, email, password_hash, is_admin, two_fa_code, two_fa_code_expires_at, created_at`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByUsernameAndEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1 AND email = $2;`

	getAllUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY id;`

	setTwoFACode = `UPDATE users
    SET two_fa_code = $2, two_fa_code_expires_at = $3
    WHERE id = $1;`

	clearTwoFACode = `UPDATE users
    SET two_fa_code = NULL, two_fa_code_expires_at = NULL
    WHERE id = $1 AND two_fa_code = $2;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	getAllEmployees = `SELECT matricule, nom, affectation, emploi, fonction
    FROM employe
    ORDER BY matricule;`

	findEmployeeByMatricule = `SELECT matricule, nom, affectation, emploi, fonction
    FROM employe
    WHERE matricule = $1;`

	createEmployee = `INSERT INTO employe (matricule, nom, affectation, emploi, fonction)
    VALUES ($1, $2, $3, $4, $5);`

	updateEmployee = `UPDATE employe
    SET nom = $2, affectation = $3, emploi = $4, fonction = $5
    WHERE matricule = $1;`

	deleteEmployee = `DELETE FROM employe WHERE matricule = $1;`

	getAllBureaux = `SELECT numero, niveau, superficie
    FROM bureau
    ORDER BY niveau, numero;`

	findBureauByNumero = `SELECT numero, niveau, superficie
    FROM bureau
    WHERE numero = $1;`

	createBureau = `INSERT INTO bureau (numero, niveau, superficie)
    VALUES ($1, $2, $3);`

	updateBureau = `UPDATE bureau
    SET niveau = $2, superficie = $3
    WHERE numero = $1;`

	deleteBureau = `DELETE FROM bureau WHERE numero = $1;`

	getAllAssignments = `SELECT matricule, numero, date_affectation, decision
    FROM affectation
    ORDER BY date_affectation DESC, matricule;`

	createAssignment = `INSERT INTO affectation (matricule, numero, date_affectation, decision)
    VALUES ($1, $2, $3, $4);`

	updateAssignment = `UPDATE affectation
    SET matricule = $3, numero = $4, date_affectation = $5, decision = $6
    WHERE matricule = $1 AND numero = $2;`

	deleteAssignment = `DELETE FROM affectation WHERE matricule = $1 AND numero = $2;`
)

// buildUserUpdateQuery builds the UPDATE statement for a profile change.
// Only the columns enumerated in [models.UserUpdate] can ever appear in the
// SET clause.
func buildUserUpdateQuery(id int64, update models.UserUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns)

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}
	if update.IsAdmin != nil {
		builder = builder.Set("is_admin", *update.IsAdmin)
	}

	return builder.ToSql()
}
