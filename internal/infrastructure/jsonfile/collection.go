// Package jsonfile implementa los puertos de persistencia sobre los archivos
// JSON planos que ya usa la organización (productos.json y movements.json).
//
// Los archivos existen en dos formas: un array pelado de registros o un
// objeto con el array bajo una clave (`{"productos": [...]}`). La forma se
// detecta al cargar, se normaliza en memoria a una lista, y se recuerda para
// que la escritura reproduzca la misma convención. Esa lógica vive solo aquí;
// nunca se filtra a la capa de negocio.
//
// Cada mutación es un ciclo leer-modificar-escribir completo. Un mutex por
// colección serializa los escritores del proceso (disciplina de un solo dueño
// del archivo) y la escritura va a un archivo temporal renombrado encima del
// original para no dejar escrituras parciales.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// collection es un archivo JSON con una lista de registros T, envuelta o no.
type collection[T any] struct {
	path    string
	wrapKey string // clave del objeto envolvente ("productos" / "movements")
	mu      sync.Mutex
}

func newCollection[T any](path, wrapKey string) *collection[T] {
	return &collection[T]{path: path, wrapKey: wrapKey}
}

// load lee el archivo y devuelve la lista y si estaba envuelta en objeto.
// Un archivo inexistente equivale a la forma envuelta vacía, igual que el
// fallback de lectura del formato original.
func (c *collection[T]) load() ([]T, bool, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, true, nil
		}
		return nil, false, fmt.Errorf("leer %s: %w", c.path, err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []T{}, true, nil
	}

	if trimmed[0] == '[' {
		var list []T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, false, fmt.Errorf("decodificar %s: %w", c.path, err)
		}
		return list, false, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, false, fmt.Errorf("decodificar %s: %w", c.path, err)
	}
	inner, ok := wrapped[c.wrapKey]
	if !ok || len(inner) == 0 {
		return []T{}, true, nil
	}
	var list []T
	if err := json.Unmarshal(inner, &list); err != nil {
		return nil, false, fmt.Errorf("decodificar %s.%s: %w", c.path, c.wrapKey, err)
	}
	return list, true, nil
}

// store escribe la lista reproduciendo la convención de envoltura detectada.
func (c *collection[T]) store(list []T, wrapped bool) error {
	var payload any = list
	if wrapped {
		payload = map[string][]T{c.wrapKey: list}
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar %s: %w", c.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("archivo temporal para %s: %w", c.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("escribir %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cerrar temporal de %s: %w", c.path, err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("reemplazar %s: %w", c.path, err)
	}
	return nil
}

// read devuelve la lista actual sin tomar el lock de escritura.
func (c *collection[T]) read() ([]T, error) {
	list, _, err := c.load()
	return list, err
}

// update ejecuta un ciclo leer-modificar-escribir atómico respecto a los
// demás escritores del proceso. fn recibe la lista actual y devuelve la que
// debe quedar persistida.
func (c *collection[T]) update(fn func(list []T) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list, wrapped, err := c.load()
	if err != nil {
		return nil, err
	}
	next, err := fn(list)
	if err != nil {
		return nil, err
	}
	if err := c.store(next, wrapped); err != nil {
		return nil, err
	}
	return next, nil
}
