package ingestion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return p
}

func TestReadSellers_SkipsHeaderAndBadLines(t *testing.T) {
	dir := t.TempDir()
	p := writeTempFile(t, dir, "vendedores.txt",
		"CC;1001;Ana;López\n"+ // header position: discarded even though it looks like data
			"CC;1002;Luis;Pérez\n"+
			"CC;1003;Sin apellido\n"+
			"\n"+
			"TI;1004;Eva;Gómez\n")

	sellers, st, err := ReadSellers(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(sellers) != 2 || sellers[0].DocumentNumber != "1002" || sellers[1].DocumentNumber != "1004" {
		t.Fatalf("unexpected sellers: %+v", sellers)
	}
	if st.Files != 1 || st.Parsed != 2 || st.Skipped != 2 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}

func TestReadProducts_InvalidPriceSkipped(t *testing.T) {
	dir := t.TempDir()
	p := writeTempFile(t, dir, "productos.txt",
		"IDProducto;NombreProducto;PrecioPorUnidadProducto\n"+
			"1;Laptop;1.200,50\n"+
			"2;Mouse;abc\n"+
			"3;Teclado;45\n")

	products, st, err := ReadProducts(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(products) != 2 || products[0].ID != 1 || products[1].ID != 3 {
		t.Fatalf("unexpected products: %+v", products)
	}
	if products[0].Price.String() != "1200.5" {
		t.Fatalf("price=%s", products[0].Price)
	}
	if st.Skipped != 1 {
		t.Fatalf("expected 1 skipped, got %+v", st)
	}
}

func TestReadSellers_QuotesHaveNoMeaning(t *testing.T) {
	dir := t.TempDir()
	p := writeTempFile(t, dir, "vendedores.txt",
		"TipoDocumento;\"NúmeroDocumento;NombresVendedor;ApellidosVendedor\n"+
			"CC;1;\"Pepe;Lopez\n"+
			"CC;2;\"Big\" Pepe;Lopez\r\n"+
			"CC;3;Ana;Díaz\n")

	sellers, st, err := ReadSellers(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(sellers) != 3 || st.Parsed != 3 || st.Skipped != 0 {
		t.Fatalf("sellers=%+v stats=%+v", sellers, st)
	}
	if sellers[0].FirstName != `"Pepe` || sellers[1].FirstName != `"Big" Pepe` || sellers[1].LastName != "Lopez" {
		t.Fatalf("fields not taken verbatim: %+v", sellers)
	}
}

func TestReadProducts_UnbalancedQuoteInHeader(t *testing.T) {
	dir := t.TempDir()
	p := writeTempFile(t, dir, "productos.txt",
		"IDProducto;\"NombreProducto;Precio\n"+
			"1;Laptop;100,00\n"+
			"2;\"Mouse;5,00\n"+
			"3;Cable;x\n"+
			"4;Teclado;20\n")

	products, st, err := ReadProducts(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(products) != 3 || st.Parsed != 3 || st.Skipped != 1 {
		t.Fatalf("products=%+v stats=%+v", products, st)
	}
	if products[1].Name != `"Mouse` || products[2].ID != 4 {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestReadSellers_HeaderOnlyAndEmpty(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"empty.txt":  "",
		"header.txt": "TipoDocumento;NúmeroDocumento;NombresVendedor;ApellidosVendedor\n",
	} {
		sellers, st, err := ReadSellers(context.Background(), writeTempFile(t, dir, name, content))
		if err != nil || len(sellers) != 0 || st.Parsed != 0 || st.Skipped != 0 {
			t.Fatalf("%s: sellers=%v stats=%+v err=%v", name, sellers, st, err)
		}
	}
}

func TestReadSellers_MissingFile(t *testing.T) {
	_, _, err := ReadSellers(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestReadSalesFile_ContextCanceled(t *testing.T) {
	dir := t.TempDir()
	p := writeTempFile(t, dir, "Vendedor_1.txt", "h;h;h\n1;1;1\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := ReadSalesFile(ctx, p); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSalesFiles_FiltersByPrefixAndSuffix(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"Vendedor_2.txt", "Vendedor_1.txt", "vendedores.txt", "Vendedor_.txt", "Vendedor_3.csv", "notes.txt", "Vendedor_backup.txt", "Vendedor_12a.txt"} {
		writeTempFile(t, dir, n, "")
	}
	if err := os.Mkdir(filepath.Join(dir, "Vendedor_dir.txt"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := SalesFiles(dir, "Vendedor_", ".txt")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{filepath.Join(dir, "Vendedor_1.txt"), filepath.Join(dir, "Vendedor_2.txt")}
	if fmt.Sprint(files) != fmt.Sprint(want) {
		t.Fatalf("files=%v want %v", files, want)
	}

	files, err = SalesFiles(filepath.Join(dir, "missing"), "Vendedor_", ".txt")
	if err != nil || files != nil {
		t.Fatalf("missing dir: files=%v err=%v", files, err)
	}
}

func TestReadSalesDir_DeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 9; i++ {
		writeTempFile(t, dir, fmt.Sprintf("Vendedor_%d.txt", i),
			fmt.Sprintf("h;h;h\n%d;1;%d\n%d;2;x\n", i, i, i))
	}

	for _, parallel := range []int{0, 1, 4} {
		sales, st, err := ReadSalesDir(context.Background(), dir, "Vendedor_", ".txt", parallel)
		if err != nil {
			t.Fatalf("parallel=%d: %v", parallel, err)
		}
		if len(sales) != 9 || st.Files != 9 || st.Parsed != 9 || st.Skipped != 9 {
			t.Fatalf("parallel=%d: sales=%d stats=%+v", parallel, len(sales), st)
		}
		for i, s := range sales {
			if s.Quantity != i+1 || s.SellerDocumentNumber != fmt.Sprint(i+1) {
				t.Fatalf("parallel=%d: out of order at %d: %+v", parallel, i, s)
			}
		}
	}
}

func TestReadSalesDir_MissingDir(t *testing.T) {
	sales, st, err := ReadSalesDir(context.Background(), filepath.Join(t.TempDir(), "nope"), "Vendedor_", ".txt", 2)
	if err != nil || len(sales) != 0 || st.Files != 0 {
		t.Fatalf("sales=%v stats=%+v err=%v", sales, st, err)
	}
}
