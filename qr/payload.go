package qr

import (
	"fmt"
	"strings"

	"github.com/JuaMGLz/Muebleria/models"
)

// ProductPayload builds the multi-line text encoded in a product's QR
// image, one "Label: value" line per display field.
func ProductPayload(p models.Product) string {
	lines := []string{
		fmt.Sprintf("Producto: %s", p.Nombre),
		fmt.Sprintf("Categoría: %s", p.NombreCategoria),
		fmt.Sprintf("Descripción: %s", p.Descripcion),
		fmt.Sprintf("Marca: %s", p.Marca),
		fmt.Sprintf("Precio: $%.2f MXN", p.Precio),
		fmt.Sprintf("Garantía: %d meses", p.GarantiaMeses),
		fmt.Sprintf("Color: %s", p.Color),
		fmt.Sprintf("Material: %s", p.Material),
		fmt.Sprintf("Peso: %g kg", p.Peso),
		fmt.Sprintf("Medidas (LxAnxAl): %gcm x %gcm x %gcm", p.Medidas.Largo, p.Medidas.Ancho, p.Medidas.Alto),
	}
	return strings.Join(lines, "\n")
}

// SalePayload builds the receipt text encoded in a sale's QR image.
// clientName is the resolved display name, not the stored id.
func SalePayload(s models.Sale, clientName string) string {
	lines := []string{
		"Venta - Comprobante",
		fmt.Sprintf("Cliente: %s", clientName),
		fmt.Sprintf("Fecha: %s", s.Fecha.Format("02/01/2006")),
		fmt.Sprintf("Total: $%.2f MXN", s.Total),
		fmt.Sprintf("Estado: %s", s.Estado),
	}
	return strings.Join(lines, "\n")
}
