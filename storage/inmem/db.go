package inmem

import (
	"strconv"
	"sync"

	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/school"
)

// DB is the process-wide volatile store. Collections are slices so insertion
// order is preserved — "recent N" reads depend on it. The RWMutex keeps the
// single-writer-at-a-time property when the host serves requests from
// multiple goroutines. State is constructed in main and injected; there is no
// package-level instance.
type DB struct {
	mu sync.RWMutex

	pkCount    int
	accounts   []auth.Account
	students   []school.Student
	teachers   []school.Teacher
	classes    []school.Class
	grades     []school.Grade
	attendance []school.Attendance
	queries    []school.StudentQuery
}

func Open() (*DB, error) {
	return &DB{}, nil
}

// nextID hands out registry ids; domain entity ids are caller-generated.
func (db *DB) nextID() string {
	db.pkCount++
	return strconv.Itoa(db.pkCount)
}
