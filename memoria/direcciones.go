package memoria

// ComponerDireccion convierte un par (página, desplazamiento) en una
// dirección física. Es pura y no valida rangos: una entrada fuera de
// rango produce una dirección que aliasa otra memoria, igual que el
// cálculo original.
func (m *Memoria) ComponerDireccion(pagina NumPagina, offset int) int {
	return int(pagina)<<m.shift | offset
}

// DividirDireccion separa una dirección lógica en índice de tabla de
// páginas y desplazamiento dentro de la página.
func (m *Memoria) DividirDireccion(dirLogica int) (indice int, offset int) {
	return dirLogica >> m.shift, dirLogica & (m.tamPagina - 1)
}
