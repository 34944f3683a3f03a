package handlers

import (
	"errors"
	"strconv"

	"github.com/ahmetcoskunkizilkaya/contactbook/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contactbook/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	contacts, err := h.contactService.List(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error fetching contacts", Detail: err.Error(),
		})
	}
	return c.JSON(contacts)
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	contact, err := h.contactService.Create(&req)
	if err != nil {
		if isContactValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error creating contact", Detail: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(contact)
}

func (h *ContactHandler) Get(c *fiber.Ctx) error {
	id, err := parseContactID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid contact id",
		})
	}

	contact, err := h.contactService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error fetching contact", Detail: err.Error(),
		})
	}

	return c.JSON(contact)
}

// Update replaces a contact wholesale. The body is validated before
// the id is looked up, so an invalid body returns 400 even when the id
// does not exist.
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	id, err := parseContactID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid contact id",
		})
	}

	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	contact, err := h.contactService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if isContactValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error updating contact", Detail: err.Error(),
		})
	}

	return c.JSON(contact)
}

func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, err := parseContactID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid contact id",
		})
	}

	if err := h.contactService.Delete(id); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error deleting contact", Detail: err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseContactID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func isContactValidationErr(err error) bool {
	return errors.Is(err, services.ErrContactFieldsRequired) ||
		errors.Is(err, services.ErrContactNameTooLong) ||
		errors.Is(err, services.ErrContactInvalidEmail) ||
		errors.Is(err, services.ErrContactEmailTaken)
}
