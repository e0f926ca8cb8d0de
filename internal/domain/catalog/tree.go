package catalog

import "github.com/jhoicas/ecommerce-catalog/internal/domain/entity"

// Descendants calcula la clausura transitiva de la relación padre→hijo empezando en rootID.
// El resultado incluye la raíz. Solo se recorren categorías activas de la lista recibida.
//
// El conjunto crece por rondas: en cada una se agregan las categorías activas cuyo padre ya está
// en el conjunto, hasta que una ronda no agrega nada. Un id ya visitado no se vuelve a agregar
// y el número de rondas está acotado por la cantidad de categorías, así que un ciclo en
// parent_id termina en lugar de iterar sin fin.
func Descendants(rootID int64, categories []*entity.Category) map[int64]struct{} {
	set := map[int64]struct{}{rootID: {}}
	for round := 0; round <= len(categories); round++ {
		added := false
		for _, c := range categories {
			if !c.IsActive || c.ParentID == nil {
				continue
			}
			if _, seen := set[c.ID]; seen {
				continue
			}
			if _, parentIn := set[*c.ParentID]; parentIn {
				set[c.ID] = struct{}{}
				added = true
			}
		}
		if !added {
			break
		}
	}
	return set
}

// IDs convierte el conjunto en slice (orden no definido).
func IDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}
