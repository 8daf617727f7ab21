package handler

import (
	"registros/internal/entity"
	"registros/internal/repository"
)

// CredentialStore is what the auth handlers need from the user table.
type CredentialStore interface {
	FindByUsername(username string) (*entity.Credential, error)
	Verify(password, passwordHash string) bool
	Create(username, password string) error
}

// CourseStore is what the record handlers need from the course table.
type CourseStore interface {
	List() ([]entity.Course, error)
	GetByCode(code int) (*entity.Course, error)
	Insert(code int, name string, workload string, professor string) (repository.InsertResult, error)
	Update(code int, name string, workload string, professor string) (bool, error)
	Delete(code int) error
}
