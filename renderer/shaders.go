package renderer

// The GLSL sources are embedded the way the engine embeds all of its
// shaders: as package-level consts, compiled at renderer construction.
//
// The struct declarations inside the storage blocks are the GPU half of
// the layout contract in scene/pack.go — change one and the other must
// follow.

// computeSrc is the raytrace kernel. One invocation per output pixel:
// build the primary ray from the eye basis, intersect every sphere,
// shade the nearest hit with Phong plus hard shadows, write the result
// through image unit 0.
const computeSrc = `
#version 430
layout(local_size_x = 1, local_size_y = 1, local_size_z = 1) in;

layout(rgba32f, binding = 0) uniform image2D outputImg;

struct Material {
    float specular;
    float diffuse;
    float ambient;
    float shininess;
    vec3 color;
};

struct Sphere {
    vec3 position;
    float radius;
    int material;
};

struct OmniLight {
    vec3 position;
    vec3 color;
};

layout(std430, binding = 0) buffer Spheres {
    Sphere spheres[];
};

layout(std430, binding = 1) buffer Materials {
    Material materials[];
};

layout(std430, binding = 2) buffer Lights {
    OmniLight lights[];
};

uniform vec3 ambientColor;
uniform vec3 blankColor;
uniform vec3 eyePosition;
uniform vec3 eyeForward;
uniform vec3 eyeUp;
uniform float fov;

// raySphere returns the nearest positive hit distance, or -1.
float raySphere(vec3 origin, vec3 dir, Sphere s) {
    vec3 oc = origin - s.position;
    float b = dot(oc, dir);
    float c = dot(oc, oc) - s.radius * s.radius;
    float disc = b * b - c;
    if (disc < 0.0) {
        return -1.0;
    }
    float sq = sqrt(disc);
    float t = -b - sq;
    if (t > 0.0) {
        return t;
    }
    t = -b + sq;
    if (t > 0.0) {
        return t;
    }
    return -1.0;
}

// nearestHit finds the closest sphere along the ray. Returns the index,
// or -1, and writes the hit distance to tOut.
int nearestHit(vec3 origin, vec3 dir, out float tOut) {
    int hit = -1;
    float tNear = 0.0;
    for (int i = 0; i < spheres.length(); i++) {
        float t = raySphere(origin, dir, spheres[i]);
        if (t > 0.0 && (hit < 0 || t < tNear)) {
            hit = i;
            tNear = t;
        }
    }
    tOut = tNear;
    return hit;
}

// occluded tests whether anything blocks the segment from point to the
// light position.
bool occluded(vec3 point, vec3 lightPos) {
    vec3 seg = lightPos - point;
    float dist = length(seg);
    vec3 dir = seg / dist;
    for (int i = 0; i < spheres.length(); i++) {
        float t = raySphere(point + dir * 1e-3, dir, spheres[i]);
        if (t > 0.0 && t < dist) {
            return true;
        }
    }
    return false;
}

// shade evaluates Phong lighting at the hit point.
vec3 shade(vec3 point, vec3 normal, vec3 view, Material m) {
    vec3 color = m.ambient * ambientColor * m.color;
    for (int i = 0; i < lights.length(); i++) {
        if (occluded(point, lights[i].position)) {
            continue;
        }
        vec3 l = normalize(lights[i].position - point);
        float ndl = dot(normal, l);
        if (ndl <= 0.0) {
            continue;
        }
        color += m.diffuse * ndl * lights[i].color * m.color;
        vec3 r = reflect(-l, normal);
        float rdv = dot(r, view);
        if (rdv > 0.0) {
            color += m.specular * pow(rdv, m.shininess) * lights[i].color;
        }
    }
    return color;
}

void main() {
    ivec2 pixel = ivec2(gl_GlobalInvocationID.xy);
    ivec2 size = imageSize(outputImg);

    // Eye basis. The vertical half-extent of the image plane at unit
    // distance is tan(fov/2); horizontal follows the aspect ratio.
    vec3 forward = normalize(eyeForward);
    vec3 right = normalize(cross(forward, eyeUp));
    vec3 up = cross(right, forward);
    float halfH = tan(fov * 0.5);
    float halfW = halfH * float(size.x) / float(size.y);

    vec2 uv = (vec2(pixel) + 0.5) / vec2(size) * 2.0 - 1.0;
    vec3 dir = normalize(forward + uv.x * halfW * right + uv.y * halfH * up);

    float t;
    int hit = nearestHit(eyePosition, dir, t);
    vec3 color = blankColor;
    if (hit >= 0) {
        vec3 point = eyePosition + t * dir;
        vec3 normal = normalize(point - spheres[hit].position);
        color = shade(point, normal, -dir, materials[spheres[hit].material]);
    }

    imageStore(outputImg, pixel, vec4(color, 1.0));
}
`

// displayVertSrc passes the screen quad through and hands the texture
// coordinate to the fragment stage. Attribute layout: slot 0 = vec3
// position, slot 1 = vec2 texcoord, interleaved at a 5-float stride.
const displayVertSrc = `
#version 430 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inTexCoord;

out vec2 fragUV;

void main() {
    gl_Position = vec4(inPosition, 1.0);
    fragUV = inTexCoord;
}
`

// displayFragSrc samples the render result. With dithering enabled the
// color is quantised against a 4x4 Bayer threshold matrix, which trades
// banding for high-frequency noise on low-depth displays.
const displayFragSrc = `
#version 430 core
in vec2 fragUV;
out vec4 outColor;

uniform sampler2D tex;
uniform bool dithering;

const float bayer[16] = float[16](
     0.0,  8.0,  2.0, 10.0,
    12.0,  4.0, 14.0,  6.0,
     3.0, 11.0,  1.0,  9.0,
    15.0,  7.0, 13.0,  5.0);

void main() {
    vec3 color = texture(tex, fragUV).rgb;
    if (dithering) {
        ivec2 cell = ivec2(gl_FragCoord.xy) % 4;
        float threshold = (bayer[cell.y * 4 + cell.x] + 0.5) / 16.0;
        color = floor(color * 16.0 + threshold) / 16.0;
    }
    outColor = vec4(color, 1.0);
}
`
