package handlers

import (
	"net/http"

	"sevgi/invite"
	"sevgi/ledger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ProfileRequest struct {
	Name   string `form:"name" json:"name" binding:"required"`
	Age    int    `form:"age" json:"age" binding:"required"`
	Zodiac string `form:"zodiac" json:"zodiac" binding:"required"`
}

type InviteCreateRequest struct {
	ProfileRequest
	Message string `form:"message" json:"message"`
}

type QuizRequest struct {
	Answers map[string]string `json:"answers"`
}

func (r ProfileRequest) profile() invite.Profile {
	return invite.Profile{Name: r.Name, Age: r.Age, Trait: r.Zodiac}
}

func InviteCreate(c *gin.Context) {
	postReq := InviteCreateRequest{}
	if err := c.ShouldBind(&postReq); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	v, err := Invites.CreateInvite(c, invite.InitiatorProfile{
		Profile: postReq.profile(),
		Message: postReq.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"error": "", "invite": v})
}

func InviteGet(c *gin.Context) {
	v, err := Invites.GetInvite(c, c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "invite": v})
}

func InviteOpen(c *gin.Context) {
	v, err := Invites.OpenInvite(c, c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "invite": v})
}

func InviteRespondent(c *gin.Context) {
	postReq := ProfileRequest{}
	if err := c.ShouldBind(&postReq); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	v, err := Invites.SubmitRespondentProfile(c, c.Param("token"), postReq.profile())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "invite": v})
}

func InviteDelete(c *gin.Context) {
	if err := Invites.DeleteInvite(c, c.Param("token")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func QuestionList(c *gin.Context) {
	qs, err := Invites.GetQuizQuestions(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "questions": qs})
}

func InviteQuestions(c *gin.Context) {
	qs, err := Invites.GetQuizQuestionsFor(c, c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "questions": qs})
}

// InviteQuiz accepts either a form with q_<id>=A|B fields or a JSON body
// {"answers": {"<id>": "A"}}
func InviteQuiz(c *gin.Context) {
	var raw map[uint64]string
	var err error
	switch c.ContentType() {
	case binding.MIMEJSON:
		postReq := QuizRequest{}
		if err = c.ShouldBindJSON(&postReq); err == nil {
			raw = ledger.ParseKeys(postReq.Answers)
		}
	case binding.MIMEMultipartPOSTForm:
		if _, err = c.MultipartForm(); err == nil {
			raw = ledger.ParseForm(c.Request.PostForm)
		}
	default:
		if err = c.Request.ParseForm(); err == nil {
			raw = ledger.ParseForm(c.Request.PostForm)
		}
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	v, err := Invites.SubmitQuiz(c, c.Param("token"), raw)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "invite": v})
}

func InviteResult(c *gin.Context) {
	res, err := Invites.GetResult(c, c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "ready": res.Ready(), "result": res})
}

func InvitePay(c *gin.Context) {
	p, err := Invites.PayDemo(c, c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "payment": p})
}

// Register adds all API routes to router
func Register(router gin.IRouter) {
	api := router.Group("/api")
	api.POST("/invites", InviteCreate)
	api.GET("/invites/:token", InviteGet)
	api.DELETE("/invites/:token", InviteDelete)
	api.POST("/invites/:token/open", InviteOpen)
	api.POST("/invites/:token/respondent", InviteRespondent)
	api.GET("/invites/:token/questions", InviteQuestions)
	api.POST("/invites/:token/quiz", InviteQuiz)
	api.POST("/invites/:token/pay", InvitePay)
	api.GET("/questions", QuestionList)
	api.GET("/result/:token", InviteResult)
	router.GET("/robots.txt", Robots)
}
