package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() Address {
	return Address{
		Calle:     "Av. Reforma",
		Numero:    "123",
		Colonia:   "Centro",
		Municipio: "Guadalajara",
		Estado:    "Jalisco",
		CP:        "44100",
	}
}

func TestCategoryFormValidation(t *testing.T) {
	form := CategoryForm{Nombre: "Comedor", Descripcion: "Mesas y sillas"}
	assert.NoError(t, ValidateForm(&form))

	form.Nombre = ""
	assert.Error(t, ValidateForm(&form))
}

func TestClientFormValidation(t *testing.T) {
	form := ClientForm{
		Nombre:    "Juan Pérez",
		Telefono:  "3312345678",
		Email:     "juan@example.com",
		RFC:       "PEPJ800101XXX",
		Direccion: validAddress(),
		Activo:    true,
	}
	assert.NoError(t, ValidateForm(&form))

	form.Email = "no-es-correo"
	assert.Error(t, ValidateForm(&form))

	form.Email = "juan@example.com"
	form.Direccion.CP = ""
	assert.Error(t, ValidateForm(&form))
}

func TestSupplierFormCategoriaOneOf(t *testing.T) {
	form := SupplierForm{
		RazonSocial:    "Maderas del Norte SA",
		NombreContacto: "Ana López",
		Telefono:       "8112345678",
		Email:          "ventas@maderas.com",
		RFC:            "MNO950505XXX",
		Categoria:      "Materia Prima",
		Direccion:      validAddress(),
		Activo:         true,
	}
	assert.NoError(t, ValidateForm(&form))

	form.Categoria = "Electrónica"
	assert.Error(t, ValidateForm(&form))
}

func TestSupplierDocumentNormalizesEmailAndRFC(t *testing.T) {
	form := SupplierForm{
		RazonSocial:    "  Maderas del Norte SA ",
		NombreContacto: "Ana López",
		Telefono:       "8112345678",
		Email:          " Ventas@Maderas.COM ",
		RFC:            "mno950505xxx",
		Categoria:      "Materia Prima",
		Direccion:      validAddress(),
	}

	doc := form.Document()
	assert.Equal(t, "Maderas del Norte SA", doc.RazonSocial)
	assert.Equal(t, "ventas@maderas.com", doc.Email)
	assert.Equal(t, "MNO950505XXX", doc.RFC)
}

func TestProductFormValidation(t *testing.T) {
	form := ProductForm{
		NombreCategoria: "Comedor",
		Nombre:          "Mesa de Roble",
		Descripcion:     "Mesa extensible",
		Marca:           "Nórdika",
		GarantiaMeses:   12,
		Color:           "Natural",
		Material:        "Roble",
		Medidas:         Dimensions{Largo: 180, Ancho: 90, Alto: 75},
		Peso:            32.5,
		Precio:          4999.5,
		Activa:          true,
	}
	assert.NoError(t, ValidateForm(&form))

	form.Precio = -1
	assert.Error(t, ValidateForm(&form))
}

func TestInventoryFormValidation(t *testing.T) {
	form := InventoryForm{
		NombreProducto: "Mesa de Roble",
		Stock:          10,
		Ubicacion:      "Pasillo 3",
		Sucursal:       "Centro",
	}
	assert.NoError(t, ValidateForm(&form))

	form.Stock = -5
	assert.Error(t, ValidateForm(&form))
}

func TestSaleItemSubtotal(t *testing.T) {
	form := SaleItemForm{
		VentaID:        "665f1c2ab3d4e5f6a7b8c9d0",
		NombreCliente:  "Juan Pérez",
		NombreProducto: "Mesa de Roble",
		Cantidad:       3,
		PrecioUnitario: 50,
		Descuento:      20,
	}
	require.NoError(t, ValidateForm(&form))
	assert.Equal(t, 130.0, form.Subtotal())

	doc := form.Document()
	assert.Equal(t, 130.0, doc.Subtotal)
}

func TestSaleItemFormRejectsZeroQuantity(t *testing.T) {
	form := SaleItemForm{
		VentaID:        "665f1c2ab3d4e5f6a7b8c9d0",
		NombreCliente:  "Juan Pérez",
		NombreProducto: "Mesa de Roble",
		Cantidad:       0,
		PrecioUnitario: 50,
	}
	assert.Error(t, ValidateForm(&form))
}
