// Package playground hosts a small web page for trying out assembly programs
// without an editor integration. The page talks to the server over a
// websocket: it sends source text and gets back the machine code listing and
// any diagnostics.
package playground

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/brandtdamman/i281-software/assembler"
	"github.com/brandtdamman/i281-software/output"
)

type resultMessage struct {
	Type        string                 `json:"type"`
	Succeeded   bool                   `json:"succeeded"`
	Listing     string                 `json:"listing"`
	Diagnostics []assembler.Diagnostic `json:"diagnostics"`
}

// assembleSource runs the assembler over one playground submission and
// packages the outcome for the page.
func assembleSource(source string) resultMessage {
	result := assembler.Assemble(source)

	var listing strings.Builder
	if err := output.WriteListing(&listing, source, result); err != nil {
		log.Printf("playground: building listing: %v", err)
	}

	diagnostics := result.Diagnostics
	if diagnostics == nil {
		diagnostics = make([]assembler.Diagnostic, 0)
	}

	return resultMessage{
		Type:        "result",
		Succeeded:   result.Succeeded(),
		Listing:     listing.String(),
		Diagnostics: diagnostics,
	}
}

// ListenAndServe hosts the playground on the given address, e.g. ":2812".
func ListenAndServe(addr string) error {
	var upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	handler := func(w http.ResponseWriter, r *http.Request) {
		upgrader.CheckOrigin = func(r *http.Request) bool { return true }
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println(err)
			return
		}

		wsMutex := sync.Mutex{}

		for {
			_, messageBytes, err := conn.ReadMessage()
			if err != nil {
				log.Println("playground read:", err)
				break
			}

			message := struct {
				Type   string `json:"type"`
				Source string `json:"source"`
			}{}
			if err := json.Unmarshal(messageBytes, &message); err != nil {
				log.Println("playground json:", err)
				break
			}

			switch message.Type {
			case "assemble":
				response := assembleSource(message.Source)
				wsMutex.Lock()
				err = conn.WriteJSON(response)
				wsMutex.Unlock()
				if err != nil {
					log.Println("playground write:", err)
				}
			default:
				log.Printf("playground: unknown message type: %s", message.Type)
			}
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", handler)
	mux.HandleFunc("/", handleGetPage)
	log.Println("Open the playground at http://localhost" + addr)
	return http.ListenAndServe(addr, mux)
}

func handleGetPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(htmlPage))
}
