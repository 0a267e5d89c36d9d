package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/library"
)

// ReviewsController manages reviews and review likes. A review belongs to
// its author; only they can delete it.
type ReviewsController struct {
	service *library.ReviewService
}

func NewReviewsController(service *library.ReviewService) *ReviewsController {
	return &ReviewsController{service: service}
}

type reviewRequest struct {
	Rate    int    `json:"rate"`
	Comment string `json:"comment"`
}

// reviewResponse decorates a review with its like count.
type reviewResponse struct {
	*entities.Review
	LikeCount int `json:"like_count"`
}

func newReviewResponse(review *entities.Review) reviewResponse {
	return reviewResponse{Review: review, LikeCount: review.LikeCount()}
}

func (controller *ReviewsController) Create(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	review, err := controller.service.Create(bookID, library.ReviewPayload{
		Rate:    req.Rate,
		Comment: req.Comment,
	}, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "create review")
		return
	}

	respondCreated(c, newReviewResponse(review))
}

func (controller *ReviewsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	review, err := controller.service.Get(id)
	if err != nil {
		respondServiceError(c, err, "get review")
		return
	}

	c.JSON(http.StatusOK, newReviewResponse(review))
}

func (controller *ReviewsController) ListForBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reviews, err := controller.service.ListForBook(bookID)
	if err != nil {
		respondServiceError(c, err, "list reviews")
		return
	}

	responses := make([]reviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = newReviewResponse(&reviews[i])
	}

	c.JSON(http.StatusOK, gin.H{"reviews": responses, "count": len(responses)})
}

func (controller *ReviewsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.service.Delete(id, GetUserID(c)); err != nil {
		respondServiceError(c, err, "delete review")
		return
	}

	respondSuccess(c, "review deleted")
}

func (controller *ReviewsController) Like(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	like, err := controller.service.Like(id, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "like review")
		return
	}

	respondCreated(c, like)
}

func (controller *ReviewsController) Unlike(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.service.Unlike(id, GetUserID(c)); err != nil {
		respondServiceError(c, err, "unlike review")
		return
	}

	respondSuccess(c, "like removed")
}
