package handler

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"registros/internal/entity"
	"registros/internal/repository"
)

// In-memory stands-ins for the repositories, mirroring their contracts.

type fakeCredentialStore struct {
	hashes map[string]string
	err    error
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{hashes: make(map[string]string)}
}

func (f *fakeCredentialStore) FindByUsername(username string) (*entity.Credential, error) {
	if f.err != nil {
		return nil, f.err
	}
	hash, ok := f.hashes[username]
	if !ok {
		return nil, nil
	}
	return &entity.Credential{Username: username, PasswordHash: hash}, nil
}

func (f *fakeCredentialStore) Verify(password, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}

func (f *fakeCredentialStore) Create(username, password string) error {
	if f.err != nil {
		return f.err
	}
	if _, exists := f.hashes[username]; exists {
		return repository.ErrDuplicateUser
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	f.hashes[username] = string(hash)
	return nil
}

type fakeCourseStore struct {
	courses []entity.Course
	err     error
}

func (f *fakeCourseStore) List() ([]entity.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.Course(nil), f.courses...), nil
}

func (f *fakeCourseStore) GetByCode(code int) (*entity.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.courses {
		if c.Code == code {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCourseStore) Insert(code int, name string, workload string, professor string) (repository.InsertResult, error) {
	if f.err != nil {
		return repository.Skipped, f.err
	}
	for _, c := range f.courses {
		if c.Code == code {
			return repository.Skipped, nil
		}
	}
	f.courses = append(f.courses, entity.Course{
		Code:      code,
		Name:      strings.ToUpper(name),
		Professor: strings.ToUpper(professor),
	})
	return repository.Inserted, nil
}

func (f *fakeCourseStore) Update(code int, name string, workload string, professor string) (bool, error) {
	if name == "" || workload == "" || professor == "" {
		return false, repository.ErrMissingFields
	}
	if f.err != nil {
		return false, f.err
	}
	for i, c := range f.courses {
		if c.Code == code {
			f.courses[i].Name = strings.ToUpper(name)
			f.courses[i].Professor = strings.ToUpper(professor)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourseStore) Delete(code int) error {
	if f.err != nil {
		return f.err
	}
	for i, c := range f.courses {
		if c.Code == code {
			f.courses = append(f.courses[:i], f.courses[i+1:]...)
			return nil
		}
	}
	return nil
}
