package store

import (
	"context"
	"fmt"
)

// User is the object representing a marketplace user.
type User struct {
	ID        int32
	UID       string
	RowStatus RowStatus
	CreatedTs int64
	UpdatedTs int64

	Email        string
	DisplayName  string
	PasswordHash string
	Country      string
}

// FindUser is the find condition for user.
type FindUser struct {
	ID        *int32
	UID       *string
	Email     *string
	RowStatus *RowStatus

	Limit  *int
	Offset *int
}

// UpdateUser is the update request for user.
type UpdateUser struct {
	ID           int32
	UpdatedTs    *int64
	RowStatus    *RowStatus
	Email        *string
	DisplayName  *string
	PasswordHash *string
	Country      *string
}

// DeleteUser is the delete request for user.
type DeleteUser struct {
	ID int32
}

// CreateUser creates a new user.
func (s *Store) CreateUser(ctx context.Context, create *User) (*User, error) {
	return s.driver.CreateUser(ctx, create)
}

// ListUsers lists users with filter.
func (s *Store) ListUsers(ctx context.Context, find *FindUser) ([]*User, error) {
	return s.driver.ListUsers(ctx, find)
}

// GetUser gets a user by the find condition. Lookups by ID are served from the
// user cache when possible.
func (s *Store) GetUser(ctx context.Context, find *FindUser) (*User, error) {
	if find.ID != nil && find.UID == nil && find.Email == nil && find.RowStatus == nil {
		if cached, ok := s.userCache.Get(ctx, userCacheKey(*find.ID)); ok {
			if user, ok := cached.(*User); ok {
				return user, nil
			}
		}
	}

	list, err := s.driver.ListUsers(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}

	user := list[0]
	s.userCache.Set(ctx, userCacheKey(user.ID), user)
	return user, nil
}

// UpdateUser updates a user.
func (s *Store) UpdateUser(ctx context.Context, update *UpdateUser) (*User, error) {
	user, err := s.driver.UpdateUser(ctx, update)
	if err != nil {
		return nil, err
	}
	s.userCache.Set(ctx, userCacheKey(user.ID), user)
	return user, nil
}

// DeleteUser deletes a user and its preferences.
func (s *Store) DeleteUser(ctx context.Context, delete *DeleteUser) error {
	if err := s.driver.DeleteUser(ctx, delete); err != nil {
		return err
	}
	s.userCache.Delete(ctx, userCacheKey(delete.ID))
	s.userPreferencesCache.Delete(ctx, preferencesCacheKey(delete.ID))
	return nil
}

func userCacheKey(userID int32) string {
	return fmt.Sprintf("%d", userID)
}
