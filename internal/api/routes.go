package api

import (
	"fmt"
	"net/http"
	"strings"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/models"
)

const OpenAPIPath = "/openapi.json"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/").
			To(handler.Index).
			Doc("List interview rounds").
			Metadata(restfulspec.KeyOpenAPITags, []string{"index"}).
			Writes(models.IndexResponse{}).
			Returns(200, "OK", models.IndexResponse{}))

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	for _, info := range handler.executor.Rounds() {
		route := ws.POST(strings.TrimSuffix(info.Path, "/")).
			To(handler.Round(info)).
			Operation(info.Name).
			AllowedMethodsWithoutContentType([]string{http.MethodPost}).
			Doc(roundDoc(info)).
			Metadata(restfulspec.KeyOpenAPITags, []string{"rounds"}).
			Writes(models.RoundResponse{}).
			Returns(200, "OK", models.RoundResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{})

		if info.Input == models.InputKindCode {
			route.Reads(models.CodeReviewRequest{})
		} else {
			route.Reads(models.InterviewRequest{})
		}

		ws.Route(route)
	}

	container.Add(ws)

	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}

	container.Add(restfulspec.NewOpenAPIService(config))
}

func roundDoc(info models.RoundInfo) string {
	if info.Description != "" {
		return info.Description
	}
	return fmt.Sprintf("Generate a %s interview response", strings.ReplaceAll(info.Name, "_", " "))
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Interview Agent API",
			Description: "LLM-backed answers for technical and behavioural interview rounds",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "index", Description: "Round catalogue"}},
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "rounds", Description: "Interview round generation"}},
	}
}
