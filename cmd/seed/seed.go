package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// seedFile formato del archivo YAML de datos iniciales.
type seedFile struct {
	Usuarios []struct {
		Nombre      string `yaml:"nombre"`
		Email       string `yaml:"email"`
		Password    string `yaml:"password"`
		Edad        *int   `yaml:"edad"`
		Categoria   string `yaml:"categoria"`
		Descripcion string `yaml:"descripcion"`
	} `yaml:"usuarios"`
	Productos []struct {
		Nombre      string `yaml:"nombre"`
		Precio      string `yaml:"precio"`
		Categoria   string `yaml:"categoria"`
		Stock       *int   `yaml:"stock"`
		Descripcion string `yaml:"descripcion"`
	} `yaml:"productos"`
}

type seedResult struct {
	Usuarios  int
	Productos int
	Omitidos  int
}

func parseSeed(r io.Reader) (*seedFile, error) {
	var f seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("leer YAML: %w", err)
	}
	return &f, nil
}

// apply crea los registros por medio de los casos de uso, con las mismas
// validaciones que la API. Los emails ya registrados se omiten.
func apply(ctx context.Context, f *seedFile, users *usecase.UserUseCase, products *usecase.ProductUseCase) (seedResult, error) {
	var res seedResult
	for _, u := range f.Usuarios {
		_, err := users.Create(ctx, dto.CreateUserRequest{
			Nombre:      u.Nombre,
			Email:       u.Email,
			Password:    u.Password,
			Edad:        u.Edad,
			Categoria:   u.Categoria,
			Descripcion: u.Descripcion,
		})
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			res.Omitidos++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("usuario %q: %w", u.Email, err)
		}
		res.Usuarios++
	}
	for _, p := range f.Productos {
		precio, err := decimal.NewFromString(p.Precio)
		if err != nil {
			return res, fmt.Errorf("producto %q: precio inválido %q", p.Nombre, p.Precio)
		}
		if _, err := products.Create(ctx, dto.CreateProductRequest{
			Nombre:      p.Nombre,
			Precio:      &precio,
			Categoria:   p.Categoria,
			Stock:       p.Stock,
			Descripcion: p.Descripcion,
		}); err != nil {
			return res, fmt.Errorf("producto %q: %w", p.Nombre, err)
		}
		res.Productos++
	}
	return res, nil
}
