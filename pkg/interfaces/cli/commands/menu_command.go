package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kauaigouveia/lanchonete/pkg/application/services"
	"github.com/kauaigouveia/lanchonete/pkg/domain/entities"
	"github.com/kauaigouveia/lanchonete/pkg/infrastructure/repositories/csv"
	"github.com/kauaigouveia/lanchonete/pkg/infrastructure/repositories/memory"
	"github.com/kauaigouveia/lanchonete/pkg/interfaces/cli/output"
)

// Config holds configuration for the menu command.
type Config struct {
	StockFile   string
	RecipesFile string
	NoSeed      bool
	Help        bool

	// In and Out default to os.Stdin and os.Stdout.
	In  io.Reader
	Out io.Writer
}

// MenuCommand runs the interactive menu. It is a thin layer over the
// core services: it collects input, resolves names and prints results;
// all invariants live below it.
type MenuCommand struct {
	config Config
	in     *bufio.Scanner
	out    io.Writer

	stock     *services.StockService
	register  *services.CashRegisterService
	recipes   *memory.RecipeRepository
	customers *memory.CustomerRepository
}

// NewMenuCommand creates a new menu command with the given
// configuration.
func NewMenuCommand(config Config) *MenuCommand {
	if config.In == nil {
		config.In = os.Stdin
	}
	if config.Out == nil {
		config.Out = os.Stdout
	}
	return &MenuCommand{
		config: config,
		in:     bufio.NewScanner(config.In),
		out:    config.Out,
	}
}

// Execute wires the repositories and services, seeds initial data and
// runs the menu loop until the operator closes the register.
func (c *MenuCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	stockRepo := memory.NewStockRepository()
	c.recipes = memory.NewRecipeRepository()
	c.customers = memory.NewCustomerRepository()
	c.stock = services.NewStockService(stockRepo)
	c.register = services.NewCashRegisterService(c.stock, memory.NewSaleRepository(), c.recipes, c.customers)

	if err := c.seed(); err != nil {
		return fmt.Errorf("failed to seed data: %w", err)
	}

	fmt.Fprintln(c.out, "\n=== Lanchonete Manager ===")
	for ctx.Err() == nil {
		fmt.Fprint(c.out, "\nEscolha uma opção:\n"+
			"1. Cadastrar/atualizar item no estoque\n"+
			"2. Cadastrar receita\n"+
			"3. Cadastrar cliente\n"+
			"4. Registrar venda\n"+
			"5. Ver estoque\n"+
			"6. Ver quantas unidades posso produzir de uma receita\n"+
			"7. Registrar perda de estoque\n"+
			"8. Fechar caixa e sair\n\n")

		choice, err := c.readString("Opção: ")
		if err != nil {
			return nil // input closed
		}

		done, err := c.dispatch(choice)
		if err != nil {
			fmt.Fprintf(c.out, "Erro: %v\n", err)
			continue
		}
		if done {
			return nil
		}
	}
	return ctx.Err()
}

func (c *MenuCommand) dispatch(choice string) (done bool, err error) {
	switch choice {
	case "1":
		return false, c.menuUpsertStock()
	case "2":
		return false, c.menuAddRecipe()
	case "3":
		return false, c.menuAddCustomer()
	case "4":
		return false, c.menuRecordSale()
	case "5":
		fmt.Fprintln(c.out, c.stock.Summary())
		return false, nil
	case "6":
		return false, c.menuMaxProducible()
	case "7":
		return false, c.menuWriteOff()
	case "8":
		return true, c.menuCloseDay()
	default:
		fmt.Fprintln(c.out, "Opção inválida, tente novamente.")
		return false, nil
	}
}

func (c *MenuCommand) menuUpsertStock() error {
	name, err := c.readString("Nome do item: ")
	if err != nil {
		return err
	}
	quantity, err := c.readFloat("Quantidade a adicionar: ")
	if err != nil {
		return err
	}
	unit, err := c.readString("Unidade (g, un, ml, etc): ")
	if err != nil {
		return err
	}
	if unit == "" {
		unit = "un"
	}
	unitCost, err := c.readFloat("Custo unitário (R$): ")
	if err != nil {
		return err
	}

	if err := c.stock.Upsert(name, entities.Quantity(quantity), unit, entities.Money(unitCost)); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Item %s atualizado no estoque.\n", name)
	return nil
}

func (c *MenuCommand) menuAddRecipe() error {
	name, err := c.readString("Nome da receita: ")
	if err != nil {
		return err
	}

	ingredients := make(map[string]entities.Quantity)
	fmt.Fprintln(c.out, "Informe ingredientes (deixe o nome vazio para terminar):")
	for {
		ingredient, err := c.readString("Ingrediente: ")
		if err != nil {
			return err
		}
		if ingredient == "" {
			break
		}
		amount, err := c.readFloat("Quantidade por unidade: ")
		if err != nil {
			return err
		}
		ingredients[ingredient] = entities.Quantity(amount)
	}

	recipe, err := entities.NewRecipe(name, ingredients)
	if err != nil {
		return err
	}
	c.recipes.Add(recipe)
	fmt.Fprintf(c.out, "Receita %s cadastrada.\n", recipe.Name)
	return nil
}

func (c *MenuCommand) menuAddCustomer() error {
	name, err := c.readString("Nome do cliente: ")
	if err != nil {
		return err
	}
	contact, err := c.readString("Contato (opcional): ")
	if err != nil {
		return err
	}

	customer, err := entities.NewCustomer(name, contact)
	if err != nil {
		return err
	}
	c.customers.Add(customer)
	fmt.Fprintf(c.out, "Cliente %s cadastrado.\n", customer.Name)
	return nil
}

func (c *MenuCommand) menuRecordSale() error {
	recipeName, err := c.readString("Nome da receita vendida: ")
	if err != nil {
		return err
	}
	quantity, err := c.readInt("Quantidade vendida: ")
	if err != nil {
		return err
	}
	unitPrice, err := c.readFloat("Preço de venda por unidade (R$): ")
	if err != nil {
		return err
	}
	customerName, err := c.readString("Cliente (opcional): ")
	if err != nil {
		return err
	}

	if _, err := c.register.RecordSale(recipeName, quantity, entities.Money(unitPrice), customerName); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Venda registrada com sucesso.")
	return nil
}

func (c *MenuCommand) menuMaxProducible() error {
	recipeName, err := c.readString("Receita: ")
	if err != nil {
		return err
	}
	recipe, err := c.recipes.Get(recipeName)
	if err != nil {
		return err
	}
	output.WriteCapacity(c.out, recipe.Name, c.stock.MaxProducible(recipe))
	return nil
}

func (c *MenuCommand) menuWriteOff() error {
	name, err := c.readString("Nome do item: ")
	if err != nil {
		return err
	}
	amount, err := c.readFloat("Quantidade perdida: ")
	if err != nil {
		return err
	}

	if err := c.stock.WriteOff(name, entities.Quantity(amount)); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Perda de %s registrada.\n", name)
	return nil
}

func (c *MenuCommand) menuCloseDay() error {
	extraExpenses, err := c.readFloat("Despesas adicionais do dia (R$): ")
	if err != nil {
		return err
	}
	output.WriteDaySummary(c.out, c.register.CloseDay(entities.Money(extraExpenses)))
	return nil
}

// seed loads the optional CSV seed files and registers the default
// recipe of the house.
func (c *MenuCommand) seed() error {
	loader := csv.NewLoader()

	if c.config.StockFile != "" {
		records, err := loader.LoadStock(c.config.StockFile)
		if err != nil {
			return err
		}
		for _, record := range records {
			if err := c.stock.Upsert(record.Name, record.Quantity, record.Unit, record.UnitCost); err != nil {
				return err
			}
		}
	}

	if c.config.RecipesFile != "" {
		recipes, err := loader.LoadRecipes(c.config.RecipesFile)
		if err != nil {
			return err
		}
		for _, recipe := range recipes {
			c.recipes.Add(recipe)
		}
	}

	if c.config.NoSeed {
		return nil
	}
	sanduiche, err := entities.NewRecipe("Sanduíche de Frango", map[string]entities.Quantity{
		"frango":     80, // gramas
		"presunto":   1,  // fatia
		"queijo":     1,  // fatia
		"hamburguer": 1,  // unidade
		"ovo":        1,  // unidade
		"alface":     1,  // folha
		"tomate":     1,  // fatia
	})
	if err != nil {
		return err
	}
	c.recipes.Add(sanduiche)
	return nil
}

func (c *MenuCommand) showHelp() {
	fmt.Fprint(c.out, `Lanchonete Manager

Controle de estoque, receitas e caixa para uma lanchonete.

Usage:
  lanchonete [flags]

Flags:
  -stock string     CSV de estoque inicial (name,quantity,unit,unit_cost)
  -recipes string   CSV de receitas (recipe,ingredient,amount)
  -no-seed          não cadastrar a receita padrão
  -help             mostrar esta mensagem
`)
}

func (c *MenuCommand) readString(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *MenuCommand) readFloat(prompt string) (float64, error) {
	text, err := c.readString(prompt)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("valor numérico inválido: %q", text)
	}
	return value, nil
}

func (c *MenuCommand) readInt(prompt string) (int, error) {
	text, err := c.readString(prompt)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("número inteiro inválido: %q", text)
	}
	return value, nil
}
