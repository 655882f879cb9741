package product

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"storefront-api/internal/httputil"
	"storefront-api/internal/logging"
)

var validate = validator.New()

// Handler contains HTTP handlers for product endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateRequest represents the product creation request body
type CreateRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required"`
}

// UpdateRequest represents a partial product update. Omitted fields keep
// their stored values.
type UpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// MessageResponse represents a plain success message
type MessageResponse struct {
	Message string `json:"message"`
}

// UpdateResponse represents a successful update with the resulting record
type UpdateResponse struct {
	Message string   `json:"message"`
	Updated *Product `json:"updated"`
}

// Create handles product creation
// @Summary      Create a product
// @Description  Create a new product with title, description and price.
// @Tags         product
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateRequest true "Product fields"
// @Success      201 {object} MessageResponse
// @Failure      422 {object} httputil.ErrorResponse "Missing required fields"
// @Failure      401 {object} httputil.ErrorResponse "Missing or malformed Authorization header"
// @Failure      400 {object} httputil.ErrorResponse "Invalid token"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /product/create [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid product create request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		logger.Warn("product creation failed: missing required fields")
		httputil.RespondErrorWithCode(w, "All fields required", httputil.CodeValidationFailed, http.StatusUnprocessableEntity)
		return
	}

	created, err := h.service.Create(r.Context(), req.Title, req.Description, req.Price)
	if err != nil {
		logger.Error("product creation failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "Server error", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("product created successfully", "product_id", created.ID)

	httputil.RespondJSON(w, MessageResponse{
		Message: fmt.Sprintf("%s created successfully", created.Title),
	}, http.StatusCreated)
}

// GetAll handles listing all products
// @Summary      List products
// @Description  Return every product.
// @Tags         product
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Product
// @Failure      401 {object} httputil.ErrorResponse "Missing or malformed Authorization header"
// @Failure      400 {object} httputil.ErrorResponse "Invalid token"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /product/ [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	products, err := h.service.List(r.Context())
	if err != nil {
		logger.Error("failed to list products", "error", err.Error())
		httputil.RespondErrorWithCode(w, "Server error", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, products, http.StatusOK)
}

// Update handles partial product updates
// @Summary      Update a product
// @Description  Partially update a product by id. Omitted fields keep their stored values.
// @Tags         product
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int           true  "Product id"
// @Param        request body UpdateRequest true  "Fields to update"
// @Success      200 {object} UpdateResponse
// @Failure      404 {object} httputil.ErrorResponse "Product not found"
// @Failure      401 {object} httputil.ErrorResponse "Missing or malformed Authorization header"
// @Failure      400 {object} httputil.ErrorResponse "Invalid token"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /product/{id} [post]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.RespondErrorWithCode(w, "Product not found", httputil.CodeProductNotFound, http.StatusNotFound)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid product update request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), id, UpdateFields{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Warn("product update failed: not found", "product_id", id)
			httputil.RespondErrorWithCode(w, "Product not found", httputil.CodeProductNotFound, http.StatusNotFound)
			return
		}
		logger.Error("product update failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "Server error", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("product updated successfully", "product_id", id)

	httputil.RespondJSON(w, UpdateResponse{
		Message: "Product updated successfully",
		Updated: updated,
	}, http.StatusOK)
}
