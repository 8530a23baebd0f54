package render

import (
	"log"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Os espaços do museu são iluminados por um par de luzes fixas sem sombras:
// uma zenital fria e um preenchimento lateral quente. A névoa de distância
// funde as alas longínquas com o fundo antes de o descarte removê-las, para
// que a saída de um espaço nunca apareça como um corte seco.

const galleryVertexShader = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
in vec4 vertexColor;

uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;

out vec2 fragTexCoord;
out vec4 fragColor;
out vec3 fragNormal;
out vec3 fragWorldPos;

void main()
{
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
    fragWorldPos = vec3(matModel * vec4(vertexPosition, 1.0));
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

// Variante instanciada: a matriz de modelo chega por atributo, uma por
// moldura. Compartilha o fragment shader da galeria.
const galleryInstancedVertexShader = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
in vec4 vertexColor;
in mat4 instanceTransform;

uniform mat4 mvp;

out vec2 fragTexCoord;
out vec4 fragColor;
out vec3 fragNormal;
out vec3 fragWorldPos;

void main()
{
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    fragNormal = normalize(vec3(instanceTransform * vec4(vertexNormal, 0.0)));
    fragWorldPos = vec3(instanceTransform * vec4(vertexPosition, 1.0));
    gl_Position = mvp * instanceTransform * vec4(vertexPosition, 1.0);
}
`

const galleryFragmentShader = `
#version 330

in vec2 fragTexCoord;
in vec4 fragColor;
in vec3 fragNormal;
in vec3 fragWorldPos;

uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 camPos;

out vec4 finalColor;

void main()
{
    vec4 texelColor = texture(texture0, fragTexCoord);

    vec3 normal = normalize(fragNormal);
    vec3 keyDir = normalize(vec3(0.25, 1.0, 0.35));
    vec3 fillDir = normalize(vec3(-0.5, 0.2, -0.4));
    float key = max(dot(normal, keyDir), 0.0);
    float fill = max(dot(normal, fillDir), 0.0);
    // Ambiente alto: um museu não tem cantos pretos.
    vec3 light = vec3(0.55) + vec3(0.50, 0.48, 0.44) * key + vec3(0.20, 0.17, 0.14) * fill;

    vec4 color = texelColor * colDiffuse * fragColor;
    color.rgb *= light;

    float dist = length(camPos - fragWorldPos);
    float fogFactor = clamp(exp(-pow(dist * 0.016, 2.0)), 0.0, 1.0);
    vec3 fogColor = vec3(0.07, 0.06, 0.08);
    color.rgb = mix(fogColor, color.rgb, fogFactor);

    finalColor = vec4(color.rgb, color.a);
}
`

// initShaders compila os shaders da galeria. Sem janela (ou com a compilação
// falhando) o renderizador segue com o shader padrão do raylib; só as
// molduras instanciadas exigem o shader próprio e são puladas sem ele.
func (r *Renderer) initShaders() {
	if !rl.IsWindowReady() {
		return
	}

	r.galleryShader = rl.LoadShaderFromMemory(galleryVertexShader, galleryFragmentShader)
	if r.galleryShader.ID != 0 {
		r.galleryCamLoc = rl.GetShaderLocation(r.galleryShader, "camPos")
	}

	r.frameShader = rl.LoadShaderFromMemory(galleryInstancedVertexShader, galleryFragmentShader)
	if r.frameShader.ID != 0 {
		// O desenho instanciado lê a matriz de modelo do atributo
		// instanceTransform; o slot MATRIX_MODEL precisa apontar para ele.
		locs := unsafe.Slice(r.frameShader.Locs, 32)
		locs[rl.ShaderLocMatrixModel] = rl.GetShaderLocationAttrib(r.frameShader, "instanceTransform")
		r.frameCamLoc = rl.GetShaderLocation(r.frameShader, "camPos")
	}

	log.Printf("[Renderer] shaders da galeria prontos (gallery=%d, frames=%d)",
		r.galleryShader.ID, r.frameShader.ID)
}

// updateShaderCamera envia a posição da câmera aos shaders, para a névoa.
func (r *Renderer) updateShaderCamera(cam rl.Camera3D) {
	pos := []float32{cam.Position.X, cam.Position.Y, cam.Position.Z}
	if r.galleryShader.ID != 0 {
		rl.SetShaderValue(r.galleryShader, r.galleryCamLoc, pos, rl.ShaderUniformVec3)
	}
	if r.frameShader.ID != 0 {
		rl.SetShaderValue(r.frameShader, r.frameCamLoc, pos, rl.ShaderUniformVec3)
	}
}
