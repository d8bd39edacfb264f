package controllers

import (
	"autobazaar/constants"
	"autobazaar/dto"
	"autobazaar/response"
	"autobazaar/services"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	Comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) CommentController {
	return CommentController{Comments: comments}
}

func (cc CommentController) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid comment data")
		return
	}

	comment, err := cc.Comments.Create(c.Request.Context(), req.UserID, req.AdID, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "Success", comment)
}

func (cc CommentController) GetComment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	comment, err := cc.Comments.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, comment)
}

func (cc CommentController) DeleteComment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := cc.Comments.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetUserComment: :id là id của ad
func (cc CommentController) GetUserComment(c *gin.Context) {
	adID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	text, found, err := cc.Comments.GetComment(c.Request.Context(), adID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		response.Success(c, dto.CommentLookupResponse{Commented: false, Message: constants.NotCommentedMessage})
		return
	}
	response.Success(c, dto.CommentLookupResponse{Commented: true, Comment: &text})
}

func (cc CommentController) GetAdComments(c *gin.Context) {
	adID, ok := parseID(c, "id")
	if !ok {
		return
	}
	comments, err := cc.Comments.GetAllCommentsForAd(c.Request.Context(), adID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithTotal(c, comments, len(comments))
}
