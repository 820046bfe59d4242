// Package docs DevCamper API.
//
// Documentation of the DevCamper bootcamp directory API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//     Host: devcamper-api.herokuapp.com
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
//
//    SecurityDefinitions:
//    bearer:
//      type: apiKey
//      name: Authorization
//      in: header
//
// swagger:meta
package docs

import (
	"github.com/linesmerrill/devcamper-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/v1/bootcamps bootcamps listBootcamps
// Lists bootcamps. Supports select, sort, page, limit and field filters such as averageCost[lte]=10000.
// responses:
//   200: bootcampListResponse
//   400: errorResponse

// A page of bootcamps, each with its courses.
// swagger:response bootcampListResponse
type bootcampListResponseWrapper struct {
	// in:body
	Body struct {
		models.ListResponse
		Data []models.Bootcamp `json:"data"`
	}
}

// swagger:route GET /api/v1/bootcamps/{id} bootcamps bootcampByID
// Gets a single bootcamp by ID.
// responses:
//   200: bootcampResponse
//   404: errorResponse

// swagger:route GET /api/v1/bootcamps/radius/{zipcode}/{distance} bootcamps bootcampsInRadius
// Lists the bootcamps within distance miles of the zipcode.
// responses:
//   200: bootcampListResponse
//   400: errorResponse

// Shows a single bootcamp
// swagger:response bootcampResponse
type bootcampResponseWrapper struct {
	// in:body
	Body struct {
		Success bool            `json:"success"`
		Data    models.Bootcamp `json:"data"`
	}
}

// swagger:route GET /api/v1/courses courses listCourses
// Lists courses with the name and description of their bootcamp.
// responses:
//   200: courseListResponse

// A page of courses
// swagger:response courseListResponse
type courseListResponseWrapper struct {
	// in:body
	Body struct {
		models.ListResponse
		Data []models.Course `json:"data"`
	}
}

// swagger:route GET /api/v1/reviews reviews listReviews
// Lists reviews with the name and description of their bootcamp.
// responses:
//   200: reviewListResponse

// A page of reviews
// swagger:response reviewListResponse
type reviewListResponseWrapper struct {
	// in:body
	Body struct {
		models.ListResponse
		Data []models.Review `json:"data"`
	}
}

// swagger:route POST /api/v1/auth/login auth login
// Signs a user in. The token is returned in the body and set as the token cookie.
// responses:
//   200: tokenResponse
//   401: errorResponse

// swagger:parameters login
type loginParamsWrapper struct {
	// in:body
	Body models.LoginRequest
}

// A signed token
// swagger:response tokenResponse
type tokenResponseWrapper struct {
	// in:body
	Body models.TokenResponse
}

// Returned by every failed request
// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
