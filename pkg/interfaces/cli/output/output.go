package output

import (
	"fmt"
	"io"

	"github.com/kauaigouveia/lanchonete/pkg/application/dto"
)

// WriteDaySummary writes the day-close report with two-decimal
// currency figures.
func WriteDaySummary(w io.Writer, summary dto.DaySummary) {
	fmt.Fprintf(w, "\n=== Fechamento do Caixa ===\n")
	fmt.Fprintf(w, "Receita total: R$ %v\n", summary.Revenue)
	fmt.Fprintf(w, "Custo de ingredientes: R$ %v\n", summary.IngredientCost)
	fmt.Fprintf(w, "Lucro bruto: R$ %v\n", summary.GrossProfit)
	fmt.Fprintf(w, "Despesas: R$ %v\n", summary.Expenses)
	fmt.Fprintf(w, "Lucro líquido: R$ %v\n", summary.NetProfit)
}

// WriteCapacity writes how many units of a recipe current stock
// covers.
func WriteCapacity(w io.Writer, recipeName string, units int) {
	fmt.Fprintf(w, "Com o estoque atual é possível produzir %d unidade(s) de %s.\n", units, recipeName)
}
