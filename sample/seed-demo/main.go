package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"os"

	"github.com/joho/godotenv"
)

// Programa de fumaça: sobe um usuário demo, uma campanha e um lote de leads
// contra uma API rodando localmente. Útil pra validar o fluxo completo
// (sessão -> campanha -> import -> listagem) sem frontend.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	jar, _ := cookiejar.New(nil)
	client := &http.Client{Jar: jar}

	fmt.Println("🚀 Criando usuário demo...")
	post(client, baseURL+"/auth/register", map[string]any{
		"name":     "Demo",
		"email":    "demo@outreach.local",
		"password": "demo12345",
	})

	// Register pode falhar se o usuário já existe; o login resolve.
	fmt.Println("🔑 Fazendo login...")
	if status := post(client, baseURL+"/auth/login", map[string]any{
		"email":    "demo@outreach.local",
		"password": "demo12345",
	}); status != http.StatusOK {
		log.Fatalf("❌ Login falhou com status %d", status)
	}

	fmt.Println("📣 Criando campanha...")
	post(client, baseURL+"/campaigns", map[string]any{
		"name":   "Campanha Demo",
		"status": "active",
	})

	fmt.Println("📥 Importando leads...")
	rows := []map[string]any{
		{"name": "Maria Silva", "email": "maria@acme.com", "company": "Acme"},
		{"name": "John Doe", "email": "john@globex.io", "company": "Globex"},
		{"name": "Ana Souza", "email": "ana@initech.dev", "company": "Initech"},
	}
	post(client, baseURL+"/leads/import", map[string]any{"rows": rows})

	fmt.Println("📋 Listando leads...")
	resp, err := client.Get(baseURL + "/leads?limit=10")
	if err != nil {
		log.Fatalf("❌ Falha ao listar leads: %v", err)
	}
	defer resp.Body.Close()

	var page struct {
		Items []json.RawMessage `json:"items"`
	}
	json.NewDecoder(resp.Body).Decode(&page)
	fmt.Printf("✅ Pronto! %d leads visíveis (o import é assíncrono, repita em alguns segundos).\n", len(page.Items))
}

func post(client *http.Client, url string, payload any) int {
	body, _ := json.Marshal(payload)
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("❌ POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		fmt.Printf("   (status %d em %s)\n", resp.StatusCode, url)
	}
	return resp.StatusCode
}
