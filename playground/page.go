package playground

var htmlPage = `<html>
<head>
	<title>i281 Assembler Playground</title>
</head>
<body style="background-color: #1E1E1E;">
	<h1 style="color: white; display: inline-block;">i281 Assembler Playground</h1>
	<button id="assembleButton" style="margin-left: 50px; height: 40px; width: 110px;">ASSEMBLE</button>
	<br/>
	<textarea id="source" rows="20" spellcheck="false" style="width: 480px; padding: 10px; color: white; font-size: 1.2em; font-family: monospace; background-color: black; border: 2px solid white;">.data
count BYTE 5
.code
      LOADI A, 0
loop: ADDI A, 1
      CMP A, B
      BRNE loop</textarea>
	<pre id="listing" style="display: inline-block; vertical-align: top; width: 440px; padding: 10px; color: white; font-size: 1.2em; font-family: monospace; background-color: black; border: 2px solid white; min-height: 380px;"></pre>
	<h2 style="color: white;">Diagnostics</h2>
	<div style="width: 960px; padding: 10px; color: white; font-size: 1.2em; font-family: monospace; background-color: black; height: 200px; overflow-y: auto; border: 2px solid white;" id="diagnostics"></div>

	<script>
		// Connect to the websocket
		var socket = new WebSocket("ws://" + window.location.host + "/ws");

		socket.onopen = function() {
			socket.onmessage = function(event) {
				var data = JSON.parse(event.data);
				if (data.type != "result") {
					return;
				}

				document.getElementById("listing").textContent = data.listing;

				var severities = {1: "Error", 2: "Warning", 3: "Info", 4: "Hint"};
				var text = "";
				for (var i = 0; i < data.diagnostics.length; i++) {
					var d = data.diagnostics[i];
					var where = (d.range.start.line + 1) + ":" + d.range.start.character;
					text += severities[d.severity] + " " + where + ": " + d.message.replaceAll("\n", " ") + "<br/>";
				}
				if (text == "") {
					text = data.succeeded ? "No problems." : "";
				}
				document.getElementById("diagnostics").innerHTML = text;
			};
		};

		// when the socket closes, try to reconnect every 3 seconds
		socket.onclose = function() {
			setTimeout(function() {
				socket = new WebSocket("ws://" + window.location.host + "/ws");
			}, 3000);
		};

		document.getElementById("assembleButton").onclick = function() {
			socket.send(JSON.stringify({
				type: "assemble",
				source: document.getElementById("source").value
			}));
		};
	</script>
</body>
</html>`
