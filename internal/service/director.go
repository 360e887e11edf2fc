package service

import (
	"context"
	"time"

	"milimani.co.ke/backend/internal/model"
	modelcache "milimani.co.ke/backend/internal/model/cache"
	"milimani.co.ke/backend/internal/repo"
)

type Director struct {
	DirectorRepo *repo.Director
}

func NewDirector(directorRepo *repo.Director) *Director {
	return &Director{
		DirectorRepo: directorRepo,
	}
}

// Cache: directors, 10min. About-page content changes a few times a year.
func (s *Director) GetDirectors(ctx context.Context) ([]*model.Director, error) {
	var directors []*model.Director
	err := modelcache.Directors.MutexGetSet(&directors, func() ([]*model.Director, error) {
		return s.DirectorRepo.GetDirectors(ctx)
	}, time.Minute*10)
	return directors, err
}
