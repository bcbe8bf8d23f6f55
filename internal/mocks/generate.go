// Package mocks provides mock implementations for testing the schutzraum portal.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the repository interfaces in internal/ports. The mocks are generated using
// go:generate directives.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockShelterRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), "shelter-berlin-001").Return(shelter, nil)
package mocks

// Generate mock for ShelterRepository: List, GetByID, Create, Update.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=shelter_repository_mock.go github.com/zivilschutz/schutzraum-api/internal/ports ShelterRepository

// Generate mock for NotificationRepository: ListByRole, MarkRead, MarkAllRead.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=notification_repository_mock.go github.com/zivilschutz/schutzraum-api/internal/ports NotificationRepository

// Generate mock for CrisisRepository: Get, Put.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=crisis_repository_mock.go github.com/zivilschutz/schutzraum-api/internal/ports CrisisRepository

// Generate mock for IdentityDirectory: FindByEmail, FindByID, List.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=identity_directory_mock.go github.com/zivilschutz/schutzraum-api/internal/ports IdentityDirectory
