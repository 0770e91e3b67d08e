package openapi_server

import (
	"encoding/json"
	"net/http"
	"strings"
)

const kmlContentType = "application/vnd.google-earth.kml+xml"

// DefaultApiController binds http requests to an api service and writes the service results to the http response
type DefaultApiController struct {
	service       DefaultApiServicer
	errorHandler  ErrorHandler
	allowedOrigin string
}

// DefaultApiOption for how the controller is set up.
type DefaultApiOption func(*DefaultApiController)

// WithDefaultApiErrorHandler inject ErrorHandler into controller
func WithDefaultApiErrorHandler(h ErrorHandler) DefaultApiOption {
	return func(c *DefaultApiController) {
		c.errorHandler = h
	}
}

// WithDefaultApiAllowedOrigin sets the origin which is allowed for cross origin requests
func WithDefaultApiAllowedOrigin(origin string) DefaultApiOption {
	return func(c *DefaultApiController) {
		c.allowedOrigin = origin
	}
}

// NewDefaultApiController creates a default api controller
func NewDefaultApiController(s DefaultApiServicer, opts ...DefaultApiOption) Router {
	controller := &DefaultApiController{
		service:       s,
		errorHandler:  DefaultErrorHandler,
		allowedOrigin: "*",
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns all of the api route for the DefaultApiController
func (c *DefaultApiController) Routes() Routes {
	return Routes{
		{
			"ComputeRoute",
			strings.ToUpper("Post"),
			"/routes",
			c.ComputeRoute,
		},
		{
			"ComputeRouteGeoJson",
			strings.ToUpper("Post"),
			"/routes/geojson",
			c.ComputeRouteGeoJson,
		},
		{
			"ComputeRouteKml",
			strings.ToUpper("Post"),
			"/routes/kml",
			c.ComputeRouteKml,
		},
		{
			"GetNodes",
			strings.ToUpper("Get"),
			"/nodes",
			c.GetNodes,
		},
		{
			"GetRatings",
			strings.ToUpper("Get"),
			"/ratings",
			c.GetRatings,
		},
		{
			"ReloadData",
			strings.ToUpper("Post"),
			"/data/reload",
			c.ReloadData,
		},
	}
}

func (c *DefaultApiController) setCorsHeaders(w http.ResponseWriter, method string) {
	w.Header().Set("Access-Control-Allow-Origin", c.allowedOrigin)
	w.Header().Set("Access-Control-Allow-Methods", method)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// preflight answers OPTIONS requests, it reports whether the request was handled
func (c *DefaultApiController) preflight(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != http.MethodOptions {
		return false
	}
	c.setCorsHeaders(w, method)
	w.WriteHeader(http.StatusNoContent)
	return true
}

func (c *DefaultApiController) decodeRouteRequest(w http.ResponseWriter, r *http.Request) (RouteRequest, bool) {
	routeRequestParam := RouteRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&routeRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return routeRequestParam, false
	}
	if err := AssertRouteRequestRequired(routeRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return routeRequestParam, false
	}
	return routeRequestParam, true
}

// ComputeRoute - Compute a new route
func (c *DefaultApiController) ComputeRoute(w http.ResponseWriter, r *http.Request) {
	if c.preflight(w, r, http.MethodPost) {
		return
	}
	routeRequestParam, ok := c.decodeRouteRequest(w, r)
	if !ok {
		return
	}
	result, err := c.service.ComputeRoute(r.Context(), routeRequestParam)
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	c.setCorsHeaders(w, http.MethodPost)
	EncodeJSONResponse(result.Body, &result.Code, w)
}

// ComputeRouteGeoJson - Compute a new route as GeoJSON
func (c *DefaultApiController) ComputeRouteGeoJson(w http.ResponseWriter, r *http.Request) {
	if c.preflight(w, r, http.MethodPost) {
		return
	}
	routeRequestParam, ok := c.decodeRouteRequest(w, r)
	if !ok {
		return
	}
	result, err := c.service.ComputeRouteGeoJson(r.Context(), routeRequestParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	c.setCorsHeaders(w, http.MethodPost)
	EncodeJSONResponse(result.Body, &result.Code, w)
}

// ComputeRouteKml - Compute a new route as KML
func (c *DefaultApiController) ComputeRouteKml(w http.ResponseWriter, r *http.Request) {
	if c.preflight(w, r, http.MethodPost) {
		return
	}
	routeRequestParam, ok := c.decodeRouteRequest(w, r)
	if !ok {
		return
	}
	result, err := c.service.ComputeRouteKml(r.Context(), routeRequestParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	body, ok := result.Body.([]byte)
	if !ok {
		c.errorHandler(w, r, ErrTypeAssertionError, nil)
		return
	}
	c.setCorsHeaders(w, http.MethodPost)
	EncodeRawResponse(body, kmlContentType, &result.Code, w)
}

func (c *DefaultApiController) GetNodes(w http.ResponseWriter, r *http.Request) {
	if c.preflight(w, r, http.MethodGet) {
		return
	}
	result, err := c.service.GetNodes(r.Context())
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	c.setCorsHeaders(w, http.MethodGet)
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) GetRatings(w http.ResponseWriter, r *http.Request) {
	if c.preflight(w, r, http.MethodGet) {
		return
	}
	result, err := c.service.GetRatings(r.Context())
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	c.setCorsHeaders(w, http.MethodGet)
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) ReloadData(w http.ResponseWriter, r *http.Request) {
	if c.preflight(w, r, http.MethodPost) {
		return
	}
	result, err := c.service.ReloadData(r.Context())
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	c.setCorsHeaders(w, http.MethodPost)
	EncodeJSONResponse(result.Body, &result.Code, w)
}
