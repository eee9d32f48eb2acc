package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkeye/Poker/internal/app"
	"github.com/dkeye/Poker/internal/domain"
)

type RoomController struct {
	svc *app.RoomService
}

func NewRoomController(svc *app.RoomService) *RoomController {
	return &RoomController{svc: svc}
}

type createRoomRequest struct {
	Name        string `json:"name"`
	CreatorName string `json:"creator_name"`
	// Deck defaults to fibonacci when omitted.
	Deck string `json:"deck"`
}

type createRoomResponse struct {
	RoomID domain.RoomID `json:"room_id"`
	UserID domain.UserID `json:"user_id"`
	Room   domain.View   `json:"room"`
}

type joinRoomRequest struct {
	Name string `json:"name"`
}

type joinRoomResponse struct {
	UserID domain.UserID `json:"user_id"`
	Room   domain.View   `json:"room"`
}

type voteRequest struct {
	UserID domain.UserID `json:"user_id"`
	Vote   *int          `json:"vote"`
}

type userRequest struct {
	UserID domain.UserID `json:"user_id"`
}

// mutationResponse mirrors the success flag older clients expect on
// vote/reveal/reset.
type mutationResponse struct {
	Success bool        `json:"success"`
	Room    domain.View `json:"room"`
}

func (ctrl *RoomController) Create(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if req.Deck == "" {
		req.Deck = string(domain.DeckFibonacci)
	}
	deck, err := domain.ParseDeck(req.Deck)
	if err != nil {
		writeError(c, err)
		return
	}
	roomID, userID, view, err := ctrl.svc.Create(c.Request.Context(), req.Name, req.CreatorName, deck)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, createRoomResponse{RoomID: roomID, UserID: userID, Room: view})
}

func (ctrl *RoomController) Join(c *gin.Context) {
	var req joinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	roomID := domain.RoomID(c.Param("room_id"))
	userID, view, err := ctrl.svc.Join(c.Request.Context(), roomID, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, joinRoomResponse{UserID: userID, Room: view})
}

func (ctrl *RoomController) State(c *gin.Context) {
	roomID := domain.RoomID(c.Param("room_id"))
	userID := domain.UserID(c.Query("user_id"))
	view, err := ctrl.svc.State(c.Request.Context(), roomID, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (ctrl *RoomController) Vote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if req.Vote == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "vote is required"})
		return
	}
	roomID := domain.RoomID(c.Param("room_id"))
	view, err := ctrl.svc.Vote(c.Request.Context(), roomID, req.UserID, *req.Vote)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mutationResponse{Success: true, Room: view})
}

func (ctrl *RoomController) Reveal(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	roomID := domain.RoomID(c.Param("room_id"))
	view, err := ctrl.svc.Reveal(c.Request.Context(), roomID, req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mutationResponse{Success: true, Room: view})
}

func (ctrl *RoomController) Reset(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	roomID := domain.RoomID(c.Param("room_id"))
	view, err := ctrl.svc.Reset(c.Request.Context(), roomID, req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mutationResponse{Success: true, Room: view})
}
