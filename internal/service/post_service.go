package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"hotelbooking/internal/models"
	"hotelbooking/internal/repository"
)

// PostInput is the request body for creating or replacing a post. The long
// body may arrive as "content_max" or "max"; content_max wins.
type PostInput struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	ContentMax *string `json:"content_max"`
	Max        *string `json:"max"`
	AuthorID   *int64  `json:"author_id"`
	ImageURL   *string `json:"image_url"`
}

func (in PostInput) toModel(id int64) models.Post {
	long := in.Max
	if in.ContentMax != nil {
		long = in.ContentMax
	}
	return models.Post{
		ID:       id,
		Title:    in.Title,
		Content:  in.Content,
		Max:      long,
		AuthorID: in.AuthorID,
		ImageURL: in.ImageURL,
	}
}

type PostService interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, in PostInput) (*models.Post, error)
	Update(ctx context.Context, id int64, in PostInput) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
}

type postService struct {
	postRepo repository.PostRepository
	log      logrus.FieldLogger
}

func NewPostService(postRepo repository.PostRepository, log logrus.FieldLogger) PostService {
	return &postService{
		postRepo: postRepo,
		log:      log.WithField("component", "posts"),
	}
}

func (p *postService) List(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepo.List(ctx)
	if err != nil {
		p.log.WithError(err).Error("list posts")
		return nil, newError(KindServerError, MsgServerError, err)
	}
	return posts, nil
}

func (p *postService) Get(ctx context.Context, id int64) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(KindNotFound, MsgPostAbsent, err)
		}
		p.log.WithError(err).WithField("post_id", id).Error("get post")
		return nil, newError(KindServerError, MsgServerError, err)
	}
	return post, nil
}

func (p *postService) Create(ctx context.Context, in PostInput) (*models.Post, error) {
	post := in.toModel(0)

	if err := p.postRepo.Create(ctx, &post); err != nil {
		p.log.WithError(err).Warn("create post")
		return nil, withDetail(KindBadRequest, MsgBadRequest, err)
	}

	return &post, nil
}

func (p *postService) Update(ctx context.Context, id int64, in PostInput) (*models.Post, error) {
	post := in.toModel(id)

	if err := p.postRepo.Update(ctx, &post); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(KindNotFound, MsgPostAbsent, err)
		}
		p.log.WithError(err).WithField("post_id", id).Warn("update post")
		return nil, withDetail(KindBadRequest, MsgBadRequest, err)
	}

	return &post, nil
}

func (p *postService) Delete(ctx context.Context, id int64) error {
	if err := p.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return newError(KindNotFound, MsgPostAbsent, err)
		}
		p.log.WithError(err).WithField("post_id", id).Error("delete post")
		return newError(KindServerError, MsgServerError, err)
	}
	return nil
}
