package render

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// frameWood é o tom de madeira escura das molduras.
var frameWood = rl.NewColor(62, 44, 30, 255)

// frameBatch desenha todas as molduras visíveis numa única chamada
// instanciada. A malha é um cubo unitário; cada instância escala o cubo para
// o tamanho da moldura da obra e o leva à posição de mundo da âncora.
type frameBatch struct {
	mesh       rl.Mesh
	material   rl.Material
	transforms []rl.Matrix
	ready      bool
}

// newFrameBatch prepara a malha e o material compartilhados. Sem janela ou
// sem o shader instanciado o lote fica inerte e as molduras não são
// desenhadas; telas e painéis não dependem dele.
func newFrameBatch(shader rl.Shader) *frameBatch {
	b := &frameBatch{
		transforms: make([]rl.Matrix, 0, 256),
	}
	if !rl.IsWindowReady() || shader.ID == 0 {
		return b
	}

	b.mesh = rl.GenMeshCube(1, 1, 1)
	b.material = rl.LoadMaterialDefault()
	b.material.Shader = shader

	maps := unsafe.Slice(b.material.Maps, 12)
	maps[rl.MapDiffuse].Color = frameWood

	b.ready = true
	return b
}

// begin esvazia o lote para um novo quadro, sem liberar o buffer.
func (b *frameBatch) begin() {
	b.transforms = b.transforms[:0]
}

// add acrescenta uma moldura em coordenadas de mundo. A ordem escala →
// rotação → translação segue a composição usada pelo DrawModelEx do raylib.
func (b *frameBatch) add(pos rl.Vector3, yawDeg float32, size rl.Vector3) {
	scale := rl.MatrixScale(size.X, size.Y, size.Z)
	rot := rl.MatrixRotateY(yawDeg * rl.Deg2rad)
	trans := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)
	b.transforms = append(b.transforms, rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans))
}

// draw emite a chamada instanciada do quadro.
func (b *frameBatch) draw() {
	if !b.ready || len(b.transforms) == 0 {
		return
	}
	rl.DrawMeshInstanced(b.mesh, b.material, b.transforms, len(b.transforms))
}

func (b *frameBatch) unload() {
	if !b.ready {
		return
	}
	rl.UnloadMesh(&b.mesh)
	b.ready = false
}
