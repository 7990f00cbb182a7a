package controllers

import (
	"github.com/go-playground/validator/v10"

	"rajas/config"
	"rajas/mailer"
	"rajas/store"
)

var validate = validator.New()

// Handler carries the stores and the mailer into the route functions.
type Handler struct {
	products store.ProductStore
	orders   store.OrderStore
	mail     *mailer.Mailer
	cfg      config.Config
}

func New(products store.ProductStore, orders store.OrderStore, mail *mailer.Mailer, cfg config.Config) *Handler {
	return &Handler{
		products: products,
		orders:   orders,
		mail:     mail,
		cfg:      cfg,
	}
}
